package dateparser

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const dutchYAML = `locales:
  - code: nl
    weekday_pattern: (?i)(vorige|volgende|deze)\s+(maandag|dinsdag|woensdag|donderdag|vrijdag|zaterdag|zondag)
    month_day_pattern: (?i)(vorige|volgende|deze)\s+maand\s+(\d{1,2})
    qualifiers:
      vorige: -1
      volgende: 1
      deze: 0
    weekdays:
      maandag: 0
      dinsdag: 1
      woensdag: 2
      donderdag: 3
      vrijdag: 4
      zaterdag: 5
      zondag: 6
    aliases: [nl-NL, nl-BE]
`

const polishJSON = `{
  "locales": [
    {
      "code": "pl",
      "weekday_pattern": "(?i)(zeszły|następny|ten)\\s+(poniedziałek|wtorek|środa|czwartek|piątek|sobota|niedziela)",
      "month_day_pattern": "(?i)(zeszły|następny|ten)\\s+miesiąc\\s+(\\d{1,2})",
      "qualifiers": {"zeszły": -1, "następny": 1, "ten": 0},
      "weekdays": {
        "poniedziałek": 0, "wtorek": 1, "środa": 2, "czwartek": 3,
        "piątek": 4, "sobota": 5, "niedziela": 6
      },
      "aliases": ["pl-PL"]
    }
  ]
}`

func writeTestFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestFileLoaderYAML(t *testing.T) {
	path := writeTestFile(t, "nl.yaml", dutchYAML)

	parser := newTestParser(t, WithLoader(NewFileLoader(path)))

	got, ok := parser.ResolveAt("vorige vrijdag", testBase, "nl")
	if !ok || got.Format("2006-01-02") != "2024-01-12" {
		t.Fatalf("ResolveAt(vorige vrijdag) = %v,%v", got, ok)
	}
	if _, ok := parser.ResolveAt("vorige maand 17", testBase, "nl-be"); !ok {
		t.Fatal("alias from definition file did not resolve")
	}
	// Loaded patterns are prefix anchored like the built-ins.
	if _, ok := parser.ResolveAt("tot vorige vrijdag", testBase, "nl"); ok {
		t.Fatal("loaded pattern matched mid-string")
	}
	if _, ok := parser.ResolveAt("vorige vrijdag om tien uur", testBase, "nl"); !ok {
		t.Fatal("loaded pattern rejected trailing content")
	}
}

func TestFileLoaderJSON(t *testing.T) {
	path := writeTestFile(t, "pl.json", polishJSON)

	parser := newTestParser(t, WithLoader(NewFileLoader(path)))

	got, ok := parser.ResolveAt("zeszły piątek", testBase, "pl-PL")
	if !ok || got.Format("2006-01-02") != "2024-01-12" {
		t.Fatalf("ResolveAt(zeszły piątek) = %v,%v", got, ok)
	}
	if _, ok := parser.ResolveAt("następny miesiąc 22", testBase, "pl"); !ok {
		t.Fatal("month-day pattern from JSON did not resolve")
	}
}

func TestFileLoaderErrors(t *testing.T) {
	if _, err := NewFileLoader().Load(); err == nil {
		t.Fatal("expected error for empty path list")
	}

	if _, err := NewFileLoader(filepath.Join(t.TempDir(), "missing.yaml")).Load(); err == nil {
		t.Fatal("expected error for missing file")
	}

	path := writeTestFile(t, "nl.toml", dutchYAML)
	if _, err := NewFileLoader(path).Load(); err == nil {
		t.Fatal("expected error for unsupported extension")
	}

	bad := writeTestFile(t, "bad.yaml", "locales: {not: a list}")
	if _, err := NewFileLoader(bad).Load(); err == nil {
		t.Fatal("expected error for malformed document")
	}
}

func TestLoaderFuncAndValidation(t *testing.T) {
	called := false
	loader := LoaderFunc(func() ([]LocaleDefinition, error) {
		called = true
		return []LocaleDefinition{{
			Code:           "sv",
			WeekdayPattern: `(?i)(förra|nästa|denna)\s+(måndag|tisdag|onsdag|torsdag|fredag|lördag|söndag)`,
			Qualifiers:     map[string]int{"förra": -1, "nästa": 1, "denna": 0},
			Weekdays: map[string]int{
				"måndag": 0, "tisdag": 1, "onsdag": 2, "torsdag": 3,
				"fredag": 4, "lördag": 5, "söndag": 6,
			},
		}}, nil
	})

	parser := newTestParser(t, WithLoader(loader))
	if !called {
		t.Fatal("loader not invoked")
	}

	got, ok := parser.ResolveAt("förra fredag", testBase, "sv")
	if !ok || got.Format("2006-01-02") != "2024-01-12" {
		t.Fatalf("ResolveAt(förra fredag) = %v,%v", got, ok)
	}
	// A definition without a month-day pattern only resolves weekdays.
	if _, ok := parser.ResolveAt("förra månad 17", testBase, "sv"); ok {
		t.Fatal("month-day phrase resolved without a month-day pattern")
	}
}

func TestLoaderDefinitionValidation(t *testing.T) {
	loader := LoaderFunc(func() ([]LocaleDefinition, error) {
		return []LocaleDefinition{{
			Code:           "sv",
			WeekdayPattern: `([`,
		}}, nil
	})
	if _, err := NewParser(WithLoader(loader)); !errors.Is(err, ErrInvalidLocaleConfig) {
		t.Fatalf("expected ErrInvalidLocaleConfig, got %v", err)
	}

	incomplete := LoaderFunc(func() ([]LocaleDefinition, error) {
		return []LocaleDefinition{{
			Code:           "sv",
			WeekdayPattern: `(förra)\s+(fredag)`,
			Qualifiers:     map[string]int{"förra": -1},
			Weekdays:       map[string]int{"fredag": 4},
		}}, nil
	})
	if _, err := NewParser(WithLoader(incomplete)); !errors.Is(err, ErrInvalidLocaleConfig) {
		t.Fatalf("expected ErrInvalidLocaleConfig for incomplete weekday coverage, got %v", err)
	}
}
