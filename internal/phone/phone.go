package phone

import "strings"

// Digits strips every non-digit character from a raw phone value.
// Formatting characters, spaces and country-code prefixes are all
// dropped; only '0'-'9' survive.
func Digits(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
