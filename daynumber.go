package dateparser

import "strconv"

// resolveDayNumber converts a matched day token into a day of month in
// 1..31. Digits are tried first; numeral words second, when the locale
// defines them. Integers outside 1..31 are rejected here, before any
// month-specific validity is considered.
func resolveDayNumber(token string, cfg *LocaleConfig) (int, bool) {
	if n, err := strconv.Atoi(token); err == nil {
		if n < 1 || n > 31 {
			return 0, false
		}
		return n, true
	}

	if cfg.NumeralWords != nil {
		// Numeral words are looked up exactly as stored.
		if n, ok := cfg.NumeralWords[token]; ok {
			return n, true
		}
	}

	return 0, false
}
