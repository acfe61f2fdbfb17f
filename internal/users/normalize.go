package users

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dmitrijs2005/userdir/internal/common"
)

// phoneStrip removes every character except digits and '+'.
var phoneStrip = regexp.MustCompile(`[^+\d]`)

// NormalizeLogin canonicalizes a raw login string. A string without '@' is
// treated as a phone number; anything else is an email and is lowercased
// and trimmed. Registration, login, and access-code lookup all go through
// this function, so the same physical phone number always yields the same
// directory key regardless of formatting.
func NormalizeLogin(raw string) (string, error) {
	if !strings.Contains(raw, "@") {
		return NormalizePhone(raw)
	}
	return strings.ToLower(strings.TrimSpace(raw)), nil
}

// NormalizePhone strips formatting characters (spaces, dashes, parentheses)
// and validates the result: '+' followed by exactly 11 digits.
func NormalizePhone(raw string) (string, error) {
	p := phoneStrip.ReplaceAllString(raw, "")
	if len(p) != 12 || !strings.HasPrefix(p, "+") {
		return "", fmt.Errorf("%w: %q", common.ErrorInvalidPhoneFormat, raw)
	}
	return p, nil
}

// SplitFullName splits a full name into first and last name. A single
// token yields an empty last name; more than two tokens is an error.
func SplitFullName(fullName string) (first, last string, err error) {
	parts := strings.Fields(fullName)
	switch len(parts) {
	case 1:
		return parts[0], "", nil
	case 2:
		return parts[0], parts[1], nil
	default:
		return "", "", fmt.Errorf("%w: %q", common.ErrorInvalidFullName, fullName)
	}
}
