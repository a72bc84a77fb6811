// Package theme manages the named palettes that make up a design theme.
package theme

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	// ErrEmptyName is returned when a palette name is blank after trimming.
	ErrEmptyName = errors.New("palette name cannot be empty")

	// ErrDuplicateName is returned when a palette name is already taken.
	ErrDuplicateName = errors.New("palette name already exists")
)

// NameError is a user-correctable naming failure. It unwraps to ErrEmptyName
// or ErrDuplicateName.
type NameError struct {
	Raw  string
	Name string
	Err  error
}

func (e *NameError) Error() string {
	if errors.Is(e.Err, ErrDuplicateName) {
		return fmt.Sprintf("a palette named %q already exists", e.Name)
	}
	return e.Err.Error()
}

func (e *NameError) Unwrap() error {
	return e.Err
}

// FormatName turns user input into a palette key: trimmed, lowercased, with
// every run of whitespace replaced by a single hyphen.
// "  Primary Brand " becomes "primary-brand".
func FormatName(raw string) string {
	// Casers are stateful, so each call gets its own.
	lower := cases.Lower(language.Und)
	return strings.Join(strings.Fields(lower.String(raw)), "-")
}

// IsNameAvailable validates raw as a new palette name against existing
// names, compared case-insensitively after formatting. On success it returns
// the formatted name to use as the palette key.
func IsNameAvailable(raw string, existing []string) (string, error) {
	name := FormatName(raw)
	if name == "" {
		return "", &NameError{Raw: raw, Err: ErrEmptyName}
	}

	for _, e := range existing {
		if strings.EqualFold(FormatName(e), name) {
			return "", &NameError{Raw: raw, Name: name, Err: ErrDuplicateName}
		}
	}

	return name, nil
}
