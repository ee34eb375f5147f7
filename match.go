package dateparser

import "strings"

// matchLocale attempts the month-day pattern and then the weekday pattern
// for one locale against already-trimmed text. The first pattern to match
// commits the attempt: a syntactic match whose tokens fail semantic lookup
// is a miss, never a fallthrough to the other pattern.
func matchLocale(text string, cfg *LocaleConfig) (matchResult, bool) {
	if cfg.MonthDayPattern != nil {
		if groups := cfg.MonthDayPattern.FindStringSubmatch(text); groups != nil {
			offset, ok := cfg.QualifierOffsets[strings.ToLower(groups[1])]
			if !ok {
				return matchResult{}, false
			}
			day, ok := resolveDayNumber(groups[2], cfg)
			if !ok {
				return matchResult{}, false
			}
			return matchResult{kind: matchMonthDay, offset: offset, day: day}, true
		}
	}

	if cfg.WeekdayPattern == nil {
		return matchResult{}, false
	}
	groups := cfg.WeekdayPattern.FindStringSubmatch(text)
	if groups == nil {
		return matchResult{}, false
	}
	offset, ok := cfg.QualifierOffsets[strings.ToLower(groups[1])]
	if !ok {
		return matchResult{}, false
	}
	weekday, ok := cfg.WeekdayIndex[strings.ToLower(groups[2])]
	if !ok {
		return matchResult{}, false
	}
	return matchResult{kind: matchWeekday, offset: offset, weekday: weekday}, true
}

// localeApplies reports whether either pattern matches the trimmed text.
// Applicability is purely syntactic; token lookups are not consulted.
func localeApplies(text string, cfg *LocaleConfig) bool {
	if cfg.MonthDayPattern != nil && cfg.MonthDayPattern.MatchString(text) {
		return true
	}
	return cfg.WeekdayPattern != nil && cfg.WeekdayPattern.MatchString(text)
}
