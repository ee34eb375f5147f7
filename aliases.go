package dateparser

import (
	"fmt"
	"strings"
)

// aliasTable maps accepted locale code variants to canonical locale keys.
// Built once per parser and read-only afterwards.
type aliasTable struct {
	variants map[string]string
}

func newAliasTable() *aliasTable {
	return &aliasTable{variants: make(map[string]string)}
}

// add registers variants for a canonical key. A variant already claimed by
// a different key is a conflict.
func (t *aliasTable) add(key string, variants ...string) error {
	for _, variant := range variants {
		variant = normalizeLocaleCode(variant)
		if variant == "" {
			continue
		}
		if existing, ok := t.variants[variant]; ok && existing != key {
			return fmt.Errorf("%w: %q claimed by both %q and %q", ErrAliasConflict, variant, existing, key)
		}
		t.variants[variant] = key
	}
	return nil
}

// resolve maps an arbitrary locale code to its canonical key. Lookup is
// case-insensitive and exact; there is no partial or fuzzy matching.
func (t *aliasTable) resolve(code string) (string, bool) {
	key, ok := t.variants[strings.ToLower(code)]
	return key, ok
}
