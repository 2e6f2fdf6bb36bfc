// Package validate holds input validation helpers shared by the services.
// JSON body shape and numeric parsing are handled by gin's binding layer;
// these helpers cover the rules binding cannot express.
package validate

import (
	"errors"
	"regexp"
	"strings"
)

const (
	// MaxStringLength bounds general string fields
	MaxStringLength = 1000
	// MaxTextLength bounds long-form text fields (descriptions, contents)
	MaxTextLength = 50000
)

var emailRegex = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// Email reports whether s looks like a deliverable e-mail address. The check
// is local and deterministic: no DNS lookups.
func Email(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" || strings.Contains(s, "..") {
		return false
	}
	return emailRegex.MatchString(s)
}

var (
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")
	ErrPasswordNoUpper  = errors.New("password must contain an uppercase letter")
	ErrPasswordNoLower  = errors.New("password must contain a lowercase letter")
	ErrPasswordNoDigit  = errors.New("password must contain a digit")
)

var (
	upperRegex = regexp.MustCompile(`[A-Z]`)
	lowerRegex = regexp.MustCompile(`[a-z]`)
	digitRegex = regexp.MustCompile(`\d`)
)

// Password checks the account password policy
func Password(s string) error {
	switch {
	case len(s) < 8:
		return ErrPasswordTooShort
	case !upperRegex.MatchString(s):
		return ErrPasswordNoUpper
	case !lowerRegex.MatchString(s):
		return ErrPasswordNoLower
	case !digitRegex.MatchString(s):
		return ErrPasswordNoDigit
	}
	return nil
}

var (
	ErrEmpty    = errors.New("value cannot be empty")
	ErrTooShort = errors.New("value is too short")
	ErrTooLong  = errors.New("value is too long")
)

// CleanString trims whitespace and enforces length bounds. An empty result is
// accepted only when allowEmpty is set.
func CleanString(s string, minLen, maxLen int, allowEmpty bool) (string, error) {
	cleaned := strings.TrimSpace(s)
	if cleaned == "" {
		if allowEmpty {
			return "", nil
		}
		return "", ErrEmpty
	}
	if len(cleaned) < minLen {
		return "", ErrTooShort
	}
	if maxLen > 0 && len(cleaned) > maxLen {
		return "", ErrTooLong
	}
	return cleaned, nil
}
