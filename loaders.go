package dateparser

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Loader retrieves locale definitions used to seed a Parser.
type Loader interface {
	Load() ([]LocaleDefinition, error)
}

// LoaderFunc adapters allow bare functions to implement Loader.
type LoaderFunc func() ([]LocaleDefinition, error)

// Load implements Loader for LoaderFunc.
func (fn LoaderFunc) Load() ([]LocaleDefinition, error) {
	return fn()
}

// LocaleDefinition is the file form of a locale grammar. Patterns are
// plain regular expressions; prefix anchoring is applied on compile so
// definitions behave exactly like the built-in tables.
type LocaleDefinition struct {
	Code            string         `json:"code" yaml:"code"`
	WeekdayPattern  string         `json:"weekday_pattern" yaml:"weekday_pattern"`
	MonthDayPattern string         `json:"month_day_pattern,omitempty" yaml:"month_day_pattern,omitempty"`
	Qualifiers      map[string]int `json:"qualifiers" yaml:"qualifiers"`
	Weekdays        map[string]int `json:"weekdays" yaml:"weekdays"`
	Numerals        map[string]int `json:"numerals,omitempty" yaml:"numerals,omitempty"`
	Aliases         []string       `json:"aliases,omitempty" yaml:"aliases,omitempty"`
}

func (d LocaleDefinition) compile() (LocaleConfig, error) {
	cfg := LocaleConfig{
		Code:             normalizeLocaleCode(d.Code),
		QualifierOffsets: lowerKeys(d.Qualifiers),
		WeekdayIndex:     lowerKeys(d.Weekdays),
		// Numeral words stay exactly as written; lookup is case-sensitive.
		NumeralWords: cloneIntMap(d.Numerals),
	}

	var err error
	if cfg.WeekdayPattern, err = compileAnchored(d.WeekdayPattern); err != nil {
		return LocaleConfig{}, fmt.Errorf("%w: %s: weekday pattern: %v", ErrInvalidLocaleConfig, cfg.Code, err)
	}
	if cfg.MonthDayPattern, err = compileAnchored(d.MonthDayPattern); err != nil {
		return LocaleConfig{}, fmt.Errorf("%w: %s: month-day pattern: %v", ErrInvalidLocaleConfig, cfg.Code, err)
	}

	return cfg, nil
}

// compileAnchored compiles a pattern that matches only at the start of the
// input. Trailing content after a match remains allowed.
func compileAnchored(pattern string) (*regexp.Regexp, error) {
	if pattern == "" {
		return nil, nil
	}
	return regexp.Compile("^(?:" + pattern + ")")
}

func lowerKeys(src map[string]int) map[string]int {
	if src == nil {
		return nil
	}
	out := make(map[string]int, len(src))
	for k, v := range src {
		out[strings.ToLower(k)] = v
	}
	return out
}

// FileLoader reads locale definition files. YAML and JSON are supported,
// chosen by file extension. Later files override earlier ones per locale
// code.
type FileLoader struct {
	paths []string
}

// NewFileLoader creates a loader over the given definition files.
func NewFileLoader(paths ...string) *FileLoader {
	return &FileLoader{paths: append([]string(nil), paths...)}
}

// Load reads and decodes every configured file in order.
func (l *FileLoader) Load() ([]LocaleDefinition, error) {
	if l == nil || len(l.paths) == 0 {
		return nil, errors.New("dateparser: no loader paths configured")
	}

	var defs []LocaleDefinition
	for _, path := range l.paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("dateparser: read %s: %w", path, err)
		}

		fileDefs, err := decodeLocaleFile(path, data)
		if err != nil {
			return nil, fmt.Errorf("dateparser: decode %s: %w", path, err)
		}
		defs = append(defs, fileDefs...)
	}

	return defs, nil
}

type localeFile struct {
	Locales []LocaleDefinition `json:"locales" yaml:"locales"`
}

func decodeLocaleFile(path string, data []byte) ([]LocaleDefinition, error) {
	var doc localeFile

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
	case ".json":
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported extension %q", filepath.Ext(path))
	}

	return doc.Locales, nil
}
