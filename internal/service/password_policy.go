package service

import (
	"strings"
	"unicode"

	appErrors "github.com/noah-isme/taskguard-api/pkg/errors"
)

// Password rule codes, stable across releases so clients can key on them.
const (
	CodePasswordTooShort        = "password_too_short"
	CodePasswordTooSimilar      = "password_too_similar"
	CodePasswordTooCommon       = "password_too_common"
	CodePasswordEntirelyNumeric = "password_entirely_numeric"
	CodePasswordNoNumber        = "password_no_number"
	CodePasswordNoSymbol        = "password_no_symbol"
)

const passwordMinLength = 12

const passwordSymbols = "()[]{}|\\`~!@#$%^&*_-+=;:'\",<>./?"

// commonPasswords is a small blacklist of frequently used passwords,
// compared case-insensitively.
var commonPasswords = map[string]struct{}{
	"password":       {},
	"password1":      {},
	"password123":    {},
	"passw0rd":       {},
	"123456":         {},
	"12345678":       {},
	"123456789":      {},
	"1234567890":     {},
	"qwerty":         {},
	"qwerty123":      {},
	"letmein":        {},
	"welcome":        {},
	"welcome1":       {},
	"admin":          {},
	"administrator":  {},
	"iloveyou":       {},
	"monkey":         {},
	"dragon":         {},
	"sunshine":       {},
	"trustno1":       {},
	"abc123":         {},
	"football":       {},
	"baseball":       {},
	"superman":       {},
	"changeme":       {},
	"secret":         {},
	"password12345":  {},
	"qwertyuiop":     {},
	"1q2w3e4r5t6y":   {},
	"password1234!":  {},
	"administrator1": {},
}

// ValidatePassword runs every rule and collects all failures instead of
// stopping at the first, each carrying a stable code and a human message.
func ValidatePassword(password, username string) []appErrors.Detail {
	var failures []appErrors.Detail

	if len(password) < passwordMinLength {
		failures = append(failures, appErrors.Detail{
			Code:    CodePasswordTooShort,
			Message: "This password is too short. It must contain at least 12 characters.",
		})
	}

	if similarToUsername(password, username) {
		failures = append(failures, appErrors.Detail{
			Code:    CodePasswordTooSimilar,
			Message: "The password is too similar to the username.",
		})
	}

	if _, common := commonPasswords[strings.ToLower(password)]; common {
		failures = append(failures, appErrors.Detail{
			Code:    CodePasswordTooCommon,
			Message: "This password is too common.",
		})
	}

	if password != "" && entirelyNumeric(password) {
		failures = append(failures, appErrors.Detail{
			Code:    CodePasswordEntirelyNumeric,
			Message: "This password is entirely numeric.",
		})
	}

	if !strings.ContainsAny(password, "0123456789") {
		failures = append(failures, appErrors.Detail{
			Code:    CodePasswordNoNumber,
			Message: "The password must contain at least 1 digit (0-9).",
		})
	}

	if !strings.ContainsAny(password, passwordSymbols) {
		failures = append(failures, appErrors.Detail{
			Code:    CodePasswordNoSymbol,
			Message: "The password must contain at least 1 special character.",
		})
	}

	return failures
}

func entirelyNumeric(password string) bool {
	for _, r := range password {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func similarToUsername(password, username string) bool {
	if len(username) < 3 || len(password) < 3 {
		return false
	}
	p := strings.ToLower(password)
	u := strings.ToLower(username)
	return strings.Contains(p, u) || strings.Contains(u, p)
}
