package dateparser

// LocaleStore is a read-only registry of locale grammars. It is built once
// and safe for any number of concurrent readers.
type LocaleStore struct {
	configs map[string]*LocaleConfig
	order   []string
}

// NewLocaleStore builds an immutable snapshot from the given configs. The
// slice order becomes the dispatcher scan order; a later config with a
// code already present replaces the earlier one in place.
func NewLocaleStore(configs []LocaleConfig) *LocaleStore {
	store := &LocaleStore{configs: make(map[string]*LocaleConfig, len(configs))}

	for _, cfg := range configs {
		if cfg.Code == "" {
			continue
		}
		clone := cfg.Clone()
		if _, ok := store.configs[cfg.Code]; !ok {
			store.order = append(store.order, cfg.Code)
		}
		store.configs[cfg.Code] = &clone
	}

	return store
}

// Get returns a copy of the config for a canonical locale key.
func (s *LocaleStore) Get(key string) (LocaleConfig, bool) {
	cfg := s.lookup(key)
	if cfg == nil {
		return LocaleConfig{}, false
	}
	return cfg.Clone(), true
}

// lookup returns the shared config for key. Callers must not mutate it.
func (s *LocaleStore) lookup(key string) *LocaleConfig {
	if s == nil {
		return nil
	}
	return s.configs[key]
}

// scan returns the backing order slice for dispatch loops. Read only.
func (s *LocaleStore) scan() []string {
	if s == nil {
		return nil
	}
	return s.order
}

// Locales returns the canonical locale keys in scan order.
func (s *LocaleStore) Locales() []string {
	if s == nil || len(s.order) == 0 {
		return nil
	}
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}
