package checkout

import "strings"

// FormatCardNumber strips everything but digits and regroups them in blocks
// of four separated by single spaces, as the card input does while typing.
func FormatCardNumber(v string) string {
	var b strings.Builder
	n := 0
	for _, r := range v {
		if r < '0' || r > '9' {
			continue
		}
		if n > 0 && n%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
		n++
	}
	return b.String()
}
