package dateparser

import (
	"fmt"
	"time"
)

// Config captures parser setup prior to construction.
type Config struct {
	// Locales restricts and reorders the scan set. Empty means every
	// registered locale in declared order.
	Locales []string
	// Loader supplies additional or overriding locale definitions.
	Loader Loader
	// Clock is the base-time source for Resolve. Defaults to time.Now.
	Clock func() time.Time

	configs map[string]LocaleConfig
	order   []string
	aliases map[string][]string
}

// Option mutates Config during construction.
type Option func(*Config) error

// NewConfig builds Config via supplied options, seeded with the built-in
// locale tables.
func NewConfig(opts ...Option) (*Config, error) {
	cfg := &Config{
		configs: make(map[string]LocaleConfig, len(builtinLocales)),
		order:   append([]string(nil), builtinLocaleOrder...),
		aliases: make(map[string][]string),
	}
	for key, locale := range builtinLocales {
		cfg.configs[key] = locale
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}

	return cfg, nil
}

// WithLocales restricts the parser to the given canonical keys, in the
// given order. Keys must be registered by the time the parser is built.
func WithLocales(keys ...string) Option {
	return func(c *Config) error {
		c.Locales = append(c.Locales, keys...)
		return nil
	}
}

// WithLocaleConfig registers or overrides one locale grammar. The config
// is validated eagerly.
func WithLocaleConfig(cfg LocaleConfig) Option {
	return func(c *Config) error {
		return c.register(cfg)
	}
}

// WithAliases extends the accepted code variants for a canonical key.
func WithAliases(key string, variants ...string) Option {
	return func(c *Config) error {
		key = normalizeLocaleCode(key)
		c.aliases[key] = append(c.aliases[key], variants...)
		return nil
	}
}

// WithLoader seeds extra locale definitions from a Loader at build time.
func WithLoader(loader Loader) Option {
	return func(c *Config) error {
		c.Loader = loader
		return nil
	}
}

// WithClock overrides the base-time source used by Resolve.
func WithClock(clock func() time.Time) Option {
	return func(c *Config) error {
		c.Clock = clock
		return nil
	}
}

func (c *Config) register(cfg LocaleConfig) error {
	cfg.Code = normalizeLocaleCode(cfg.Code)
	if err := validateLocaleConfig(cfg); err != nil {
		return err
	}
	if _, ok := c.configs[cfg.Code]; !ok {
		c.order = append(c.order, cfg.Code)
	}
	c.configs[cfg.Code] = cfg.Clone()
	return nil
}

// BuildParser applies the loader, resolves the scan order and assembles an
// immutable Parser.
func (c *Config) BuildParser() (*Parser, error) {
	if c.Loader != nil {
		defs, err := c.Loader.Load()
		if err != nil {
			return nil, err
		}
		for _, def := range defs {
			cfg, err := def.compile()
			if err != nil {
				return nil, err
			}
			if err := c.register(cfg); err != nil {
				return nil, err
			}
			if len(def.Aliases) > 0 {
				c.aliases[cfg.Code] = append(c.aliases[cfg.Code], def.Aliases...)
			}
		}
	}

	for key := range c.aliases {
		if _, ok := c.configs[key]; !ok {
			return nil, fmt.Errorf("%w: aliases for %q", ErrUnknownLocale, key)
		}
	}

	order := c.order
	if len(c.Locales) > 0 {
		order = make([]string, 0, len(c.Locales))
		seen := make(map[string]struct{}, len(c.Locales))
		for _, key := range c.Locales {
			key = normalizeLocaleCode(key)
			if _, ok := c.configs[key]; !ok {
				return nil, fmt.Errorf("%w: %q", ErrUnknownLocale, key)
			}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			order = append(order, key)
		}
	}

	configs := make([]LocaleConfig, 0, len(order))
	aliases := newAliasTable()
	for _, key := range order {
		configs = append(configs, c.configs[key])
		if err := aliases.add(key, key); err != nil {
			return nil, err
		}
		if err := aliases.add(key, builtinAliases[key]...); err != nil {
			return nil, err
		}
		if err := aliases.add(key, c.aliases[key]...); err != nil {
			return nil, err
		}
	}

	clock := c.Clock
	if clock == nil {
		clock = time.Now
	}

	return &Parser{
		store:   NewLocaleStore(configs),
		aliases: aliases,
		clock:   clock,
	}, nil
}

// NewParser builds a Parser via options. Zero options yields the built-in
// ten-locale parser.
func NewParser(opts ...Option) (*Parser, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	return cfg.BuildParser()
}

func validateLocaleConfig(cfg LocaleConfig) error {
	if !validLocaleCode(cfg.Code) {
		return fmt.Errorf("%w: code %q is not a valid language tag", ErrInvalidLocaleConfig, cfg.Code)
	}
	if cfg.WeekdayPattern == nil {
		return fmt.Errorf("%w: %s: missing weekday pattern", ErrInvalidLocaleConfig, cfg.Code)
	}
	if len(cfg.QualifierOffsets) == 0 {
		return fmt.Errorf("%w: %s: missing qualifier offsets", ErrInvalidLocaleConfig, cfg.Code)
	}
	for word, offset := range cfg.QualifierOffsets {
		if offset < -1 || offset > 1 {
			return fmt.Errorf("%w: %s: qualifier %q offset %d outside -1..1", ErrInvalidLocaleConfig, cfg.Code, word, offset)
		}
	}

	var covered [7]bool
	for word, idx := range cfg.WeekdayIndex {
		if idx < 0 || idx > 6 {
			return fmt.Errorf("%w: %s: weekday %q index %d outside 0..6", ErrInvalidLocaleConfig, cfg.Code, word, idx)
		}
		covered[idx] = true
	}
	for idx, ok := range covered {
		if !ok {
			return fmt.Errorf("%w: %s: no word for weekday index %d", ErrInvalidLocaleConfig, cfg.Code, idx)
		}
	}

	for word, day := range cfg.NumeralWords {
		if day < 1 || day > 31 {
			return fmt.Errorf("%w: %s: numeral %q maps to %d outside 1..31", ErrInvalidLocaleConfig, cfg.Code, word, day)
		}
	}

	return nil
}
