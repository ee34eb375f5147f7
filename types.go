package dateparser

import "regexp"

// LocaleConfig describes one locale's compound relative date grammar.
// Configs registered with a Parser are treated as immutable.
type LocaleConfig struct {
	// Code is the canonical locale key ("zh", "en", ...).
	Code string
	// WeekdayPattern recognizes <qualifier><weekday>, anchored to the
	// start of the trimmed input. Group 1 captures the qualifier word,
	// group 2 the weekday word.
	WeekdayPattern *regexp.Regexp
	// MonthDayPattern recognizes <qualifier> month <day>, anchored
	// likewise. Group 1 captures the qualifier word, group 2 the day
	// token.
	MonthDayPattern *regexp.Regexp
	// QualifierOffsets maps lower-cased qualifier words to a unit offset
	// of -1 (previous), 0 (same) or 1 (next).
	QualifierOffsets map[string]int
	// WeekdayIndex maps lower-cased weekday words to 0..6, Monday = 0.
	WeekdayIndex map[string]int
	// NumeralWords maps spelled-out day numbers to 1..31. Nil for
	// locales whose day numbers are always written in digits.
	NumeralWords map[string]int
}

// Clone returns a deep copy of the config. Compiled patterns are shared
// since regexp values are safe for concurrent use and never mutated here.
func (c LocaleConfig) Clone() LocaleConfig {
	out := c
	out.QualifierOffsets = cloneIntMap(c.QualifierOffsets)
	out.WeekdayIndex = cloneIntMap(c.WeekdayIndex)
	out.NumeralWords = cloneIntMap(c.NumeralWords)
	return out
}

func cloneIntMap(src map[string]int) map[string]int {
	if src == nil {
		return nil
	}
	out := make(map[string]int, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

type matchKind int

const (
	matchNone matchKind = iota
	matchWeekday
	matchMonthDay
)

// matchResult carries one successful pattern match through the resolution
// pipeline. Transient, never exposed.
type matchResult struct {
	kind    matchKind
	offset  int
	weekday int
	day     int
}
