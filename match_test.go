package dateparser

import (
	"regexp"
	"testing"
)

func TestMatchLocaleWeekday(t *testing.T) {
	en := builtinLocales["en"]

	tests := []struct {
		text    string
		ok      bool
		offset  int
		weekday int
	}{
		{"last friday", true, -1, 4},
		{"Next Monday", true, 1, 0},
		{"THIS wednesday", true, 0, 2},
		{"next monday brunch", true, 1, 0}, // trailing content ignored
		{"the next monday", false, 0, 0},   // anchored at the start
		{"last", false, 0, 0},
		{"hello world", false, 0, 0},
		{"", false, 0, 0},
	}

	for _, tc := range tests {
		m, ok := matchLocale(tc.text, &en)
		if ok != tc.ok {
			t.Fatalf("matchLocale(%q) ok = %v, want %v", tc.text, ok, tc.ok)
		}
		if !ok {
			continue
		}
		if m.kind != matchWeekday || m.offset != tc.offset || m.weekday != tc.weekday {
			t.Fatalf("matchLocale(%q) = %+v, want offset %d weekday %d", tc.text, m, tc.offset, tc.weekday)
		}
	}
}

func TestMatchLocaleMonthDay(t *testing.T) {
	tests := []struct {
		locale string
		text   string
		ok     bool
		offset int
		day    int
	}{
		{"en", "last month 17th", true, -1, 17},
		{"en", "next month 22nd", true, 1, 22},
		{"en", "this month 5", true, 0, 5},
		{"en", "last month 32nd", false, 0, 0}, // day out of 1..31
		{"zh", "上个月十七号", true, -1, 17},
		{"zh", "上月17号", true, -1, 17},
		{"zh", "下个月二十二号", true, 1, 22},
		{"zh", "这月十五日", true, 0, 15},
		{"zh", "上个月40号", false, 0, 0},
		{"ja", "先月17日", true, -1, 17},
		{"ko", "지난 달 17일", true, -1, 17},
		{"ko", "다음달 3일", true, 1, 3},
	}

	for _, tc := range tests {
		cfg := builtinLocales[tc.locale]
		m, ok := matchLocale(tc.text, &cfg)
		if ok != tc.ok {
			t.Fatalf("matchLocale(%q, %s) ok = %v, want %v", tc.text, tc.locale, ok, tc.ok)
		}
		if !ok {
			continue
		}
		if m.kind != matchMonthDay || m.offset != tc.offset || m.day != tc.day {
			t.Fatalf("matchLocale(%q, %s) = %+v, want offset %d day %d", tc.text, tc.locale, m, tc.offset, tc.day)
		}
	}
}

// A pattern group wider than the lookup maps must miss instead of raising,
// and applicability stays purely syntactic.
func TestMatchLocaleUnknownTokens(t *testing.T) {
	cfg := LocaleConfig{
		Code:           "en",
		WeekdayPattern: regexp.MustCompile(`(?i)^(last|next|this|that)\s+(monday|funday)`),
		QualifierOffsets: map[string]int{
			"last": -1, "next": 1, "this": 0,
		},
		WeekdayIndex: map[string]int{"monday": 0},
	}

	if _, ok := matchLocale("that monday", &cfg); ok {
		t.Fatal("unknown qualifier should not match")
	}
	if _, ok := matchLocale("next funday", &cfg); ok {
		t.Fatal("unknown weekday should not match")
	}
	if _, ok := matchLocale("next monday", &cfg); !ok {
		t.Fatal("known tokens should match")
	}

	if !localeApplies("that monday", &cfg) {
		t.Fatal("localeApplies should match syntactically")
	}
	if localeApplies("hello", &cfg) {
		t.Fatal("localeApplies matched unrelated text")
	}
}

// A month-day match commits the attempt even when its day token fails to
// resolve; the weekday pattern is not consulted afterwards.
func TestMatchLocaleMonthDayShortCircuit(t *testing.T) {
	cfg := LocaleConfig{
		Code:             "en",
		WeekdayPattern:   regexp.MustCompile(`(?i)^(next)\s+(mon)`),
		MonthDayPattern:  regexp.MustCompile(`(?i)^(next)\s+(\w+)`),
		QualifierOffsets: map[string]int{"next": 1},
		WeekdayIndex: map[string]int{
			"mon": 0, "tue": 1, "wed": 2, "thu": 3, "fri": 4, "sat": 5, "sun": 6,
		},
	}

	if _, ok := matchLocale("next mon", &cfg); ok {
		t.Fatal("expected the committed month-day match to miss without weekday fallthrough")
	}
}
