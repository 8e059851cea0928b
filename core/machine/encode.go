// core/machine/encode.go
package machine

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"enigma-core/alphabet"
	"enigma-core/rotor"
)

// EncodeCharacter steps the machine and then routes one letter through
// the wheels, the reflector and back. Only A-Z is accepted; anything else
// returns alphabet.ErrNotEncodable and leaves the offsets untouched.
func (m *Machine) EncodeCharacter(letter rune) (rune, error) {
	x, ok := alphabet.Index(letter)
	if !ok {
		return 0, fmt.Errorf("%w: %q", alphabet.ErrNotEncodable, letter)
	}
	m.Step()
	return m.route(x)
}

func (m *Machine) route(x int) (rune, error) {
	for i := Right; i >= Left; i-- {
		x = m.rotors[i].Forward(x, m.offsets[i])
	}
	x = m.reflector.Reflect(x)
	for i := Left; i <= Right; i++ {
		x = m.rotors[i].Backward(x, m.offsets[i])
	}
	out, ok := alphabet.Letter(x)
	if !ok {
		return 0, fmt.Errorf("%w: signal %d left the alphabet", rotor.ErrInconsistent, x)
	}
	return out, nil
}

// EncodeMessage uppercases text and encodes every letter in it. Other runes
// are copied through in place and do not step the machine, so the output
// has exactly as many runes as the input. Invalid UTF-8 bytes are copied
// through byte for byte.
//
// Encoding is reciprocal: a second machine started at the same offsets
// turns the output back into the uppercased input.
func (m *Machine) EncodeMessage(text string) (string, error) {
	text = alphabet.Normalize(text)
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); {
		r, n := utf8.DecodeRuneInString(text[i:])
		if !alphabet.IsEncodable(r) {
			b.WriteString(text[i : i+n])
			i += n
			continue
		}
		c, err := m.EncodeCharacter(r)
		if err != nil {
			return "", err
		}
		b.WriteRune(c)
		i += n
	}
	return b.String(), nil
}
