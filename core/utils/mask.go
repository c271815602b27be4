package utils

import "regexp"

const maskRunes = "****"

// keyTypePrefix matches key-type prefixes such as "ed25519-priv-".
var keyTypePrefix = regexp.MustCompile(`^[a-z0-9]+-priv-`)

// MaskSecret hides a secret for display. A recognised key-type prefix stays
// visible, as do the last four characters of the secret part when it is long
// enough to keep most of it hidden.
func MaskSecret(s string) string {
	if s == "" {
		return ""
	}

	prefix := keyTypePrefix.FindString(s)
	s = s[len(prefix):]
	if len(s) <= 12 {
		return prefix + maskRunes
	}
	return prefix + maskRunes + s[len(s)-4:]
}
