// Package textlen counts string lengths in UTF-16 code units.
//
// The Google Docs API addresses document content by UTF-16 code unit, not
// by byte or rune. Every cursor advance and style range in this module must
// therefore be computed with UTF16, never len().
package textlen

// UTF16 returns the number of UTF-16 code units needed to encode s.
// Characters outside the Basic Multilingual Plane count as two units
// (a surrogate pair).
func UTF16(s string) int {
	n := 0
	for _, r := range s {
		if r > 0xFFFF {
			n += 2
		} else {
			n++
		}
	}
	return n
}
