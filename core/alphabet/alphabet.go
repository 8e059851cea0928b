// core/alphabet/alphabet.go
package alphabet

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Size is the number of encodable symbols.
const Size = 26

// Letters is the machine alphabet in index order.
const Letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// ErrNotEncodable is returned where a symbol or index falls outside the alphabet.
var ErrNotEncodable = errors.New("not encodable")

var index [256]int8 // -1 = not a letter

func init() {
	for i := range index {
		index[i] = -1
	}
	for i := 0; i < Size; i++ {
		index[Letters[i]] = int8(i)
	}
}

// Index returns the 0-based position of an uppercase letter.
// ok is false for anything outside A-Z, including lowercase.
func Index(r rune) (int, bool) {
	if r < 0 || r > 0xff {
		return 0, false
	}
	i := index[r]
	if i < 0 {
		return 0, false
	}
	return int(i), true
}

// Letter is the inverse of Index.
func Letter(i int) (rune, bool) {
	if i < 0 || i >= Size {
		return 0, false
	}
	return rune(Letters[i]), true
}

// IsEncodable reports whether r is an uppercase alphabet symbol.
func IsEncodable(r rune) bool {
	_, ok := Index(r)
	return ok
}

// Mod reduces n into [0, Size). Negative values wrap.
func Mod(n int) int {
	n %= Size
	if n < 0 {
		n += Size
	}
	return n
}

// Normalize uppercases s rune by rune, so the rune count never changes.
// Bytes that are not valid UTF-8 are copied through unchanged.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, n := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && n == 1 {
			b.WriteByte(s[i])
		} else {
			b.WriteRune(unicode.ToUpper(r))
		}
		i += n
	}
	return b.String()
}
