// Package dateparser resolves natural-language compound relative date
// expressions, a relative qualifier combined with a weekday or a
// day of month, into absolute times across ten locales: "上周五",
// "last friday", "next month 22nd", "先月17日".
//
// Resolution is a pure function of the input text, a base time and an
// optional locale hint. Locale grammar lives entirely in static data
// consumed by one generic matching and arithmetic pipeline.
package dateparser

import (
	"sync"
	"time"
)

var (
	defaultOnce sync.Once
	defaultParser  *Parser
)

func sharedParser() *Parser {
	defaultOnce.Do(func() {
		parser, err := NewParser()
		if err != nil {
			// The built-in tables are static; construction from them
			// cannot fail.
			panic(err)
		}
		defaultParser = parser
	})
	return defaultParser
}

// Resolve resolves text relative to base using the built-in locales. At
// most one locale hint is consulted.
func Resolve(text string, base time.Time, locale ...string) (time.Time, bool) {
	return sharedParser().ResolveAt(text, base, locale...)
}

// IsApplicable reports whether text matches any built-in pattern.
func IsApplicable(text string, locale ...string) bool {
	return sharedParser().IsApplicable(text, locale...)
}
