package validation

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Regex patterns
var (
	// local@domain.tld with no whitespace or extra @ in any part.
	// Whitespace is the browser's set: ASCII, \v, Unicode separators and BOM.
	contactEmailRegex = regexp.MustCompile(`^[^\t\n\v\f\r \p{Z}\x{FEFF}@]+@[^\t\n\v\f\r \p{Z}\x{FEFF}@]+\.[^\t\n\v\f\r \p{Z}\x{FEFF}@]+$`)
)

// New returns a validator with the custom tags registered
func New() *validator.Validate {
	v := validator.New()
	RegisterValidators(v)
	return v
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("notblank", NotBlank)
	_ = v.RegisterValidation("contact_email", ContactEmail)
}

// NotBlank rejects empty and whitespace-only strings
func NotBlank(fl validator.FieldLevel) bool {
	return !IsBlank(fl.Field().String())
}

// IsBlank reports whether s is empty once browser whitespace is trimmed
func IsBlank(s string) bool {
	return strings.TrimFunc(s, IsSpace) == ""
}

// IsSpace matches the whitespace set of String.prototype.trim, which unlike
// unicode.IsSpace includes U+FEFF and excludes U+0085.
func IsSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ', '\uFEFF':
		return true
	}
	return unicode.Is(unicode.Z, r)
}

// ContactEmail checks the raw value against a basic local@domain.tld shape.
// Empty values pass so notblank reports them instead.
func ContactEmail(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return IsContactEmail(val)
}

// IsContactEmail is the plain-string form of the contact_email rule
func IsContactEmail(s string) bool {
	return contactEmailRegex.MatchString(s)
}
