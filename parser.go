package dateparser

import (
	"strings"
	"time"
)

// Parser resolves compound relative date expressions such as "上周五",
// "last friday" or "next month 22nd" into absolute times. A Parser is
// immutable after construction and safe for concurrent use.
type Parser struct {
	store   *LocaleStore
	aliases *aliasTable
	clock   func() time.Time
}

// Resolve resolves text against the parser's clock. At most one locale
// hint is consulted; with no hint every registered locale is tried in scan
// order. The second return is false when nothing matched.
func (p *Parser) Resolve(text string, locale ...string) (time.Time, bool) {
	return p.ResolveAt(text, p.clock(), locale...)
}

// ResolveAt resolves text relative to an explicit base time. The result
// preserves base's time of day and location exactly.
func (p *Parser) ResolveAt(text string, base time.Time, locale ...string) (time.Time, bool) {
	text = strings.TrimSpace(text)

	if hint, ok := localeHint(locale); ok {
		// An explicit hint that does not resolve is a miss; there is
		// no fallback to the full scan.
		key, ok := p.aliases.resolve(hint)
		if !ok {
			return time.Time{}, false
		}
		return p.resolveLocale(text, base, key)
	}

	for _, key := range p.store.scan() {
		if target, ok := p.resolveLocale(text, base, key); ok {
			return target, true
		}
	}
	return time.Time{}, false
}

// IsApplicable reports whether some registered pattern matches text,
// without computing a date. Dispatch mirrors ResolveAt.
func (p *Parser) IsApplicable(text string, locale ...string) bool {
	text = strings.TrimSpace(text)

	if hint, ok := localeHint(locale); ok {
		key, ok := p.aliases.resolve(hint)
		if !ok {
			return false
		}
		cfg := p.store.lookup(key)
		return cfg != nil && localeApplies(text, cfg)
	}

	for _, key := range p.store.scan() {
		if cfg := p.store.lookup(key); cfg != nil && localeApplies(text, cfg) {
			return true
		}
	}
	return false
}

// Locales returns the canonical locale keys the parser scans, in order.
func (p *Parser) Locales() []string {
	return p.store.Locales()
}

func (p *Parser) resolveLocale(text string, base time.Time, key string) (time.Time, bool) {
	cfg := p.store.lookup(key)
	if cfg == nil {
		return time.Time{}, false
	}

	match, ok := matchLocale(text, cfg)
	if !ok {
		return time.Time{}, false
	}

	switch match.kind {
	case matchMonthDay:
		return monthDayTarget(base, match.offset, match.day), true
	case matchWeekday:
		return weekdayTarget(base, match.offset, match.weekday), true
	}
	return time.Time{}, false
}

// localeHint extracts the optional hint. An empty string counts as no hint.
func localeHint(locale []string) (string, bool) {
	if len(locale) == 0 || locale[0] == "" {
		return "", false
	}
	return locale[0], true
}
