package auth

import "strings"

const (
	passwordMinLen  = 8
	passwordLower   = "abcdefghijklmnopqrstuvwxyz"
	passwordUpper   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	passwordDigits  = "0123456789"
	passwordSymbols = "@$!%*?&"
)

// ValidPassword reports whether a candidate password satisfies the
// complexity policy: at least 8 characters, one lowercase, one
// uppercase, one digit, one symbol of the fixed set, and nothing
// outside those classes.
func ValidPassword(s string) bool {
	if len(s) < passwordMinLen {
		return false
	}
	if !strings.ContainsAny(s, passwordLower) ||
		!strings.ContainsAny(s, passwordUpper) ||
		!strings.ContainsAny(s, passwordDigits) ||
		!strings.ContainsAny(s, passwordSymbols) {
		return false
	}
	allowed := passwordLower + passwordUpper + passwordDigits + passwordSymbols
	for _, r := range s {
		if !strings.ContainsRune(allowed, r) {
			return false
		}
	}
	return true
}
