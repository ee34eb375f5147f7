package dateparser

import "errors"

// ErrUnknownLocale indicates a locale key that is not registered with the parser.
var ErrUnknownLocale = errors.New("dateparser: unknown locale")

// ErrInvalidLocaleConfig marks a locale definition that fails validation.
var ErrInvalidLocaleConfig = errors.New("dateparser: invalid locale config")

// ErrAliasConflict indicates a locale code variant claimed by two canonical keys.
var ErrAliasConflict = errors.New("dateparser: alias conflict")
