// core/rotor/permutation.go
package rotor

import (
	"fmt"

	"enigma-core/alphabet"
)

// Wiring is the lookup surface shared by Permutation, Rotor and Reflector.
type Wiring interface {
	At(i int) rune
	IndexOf(r rune) (int, error)
	String() string
}

// Permutation is a bijection over the alphabet. The zero value is not usable;
// build one with NewPermutation.
type Permutation struct {
	fwd [alphabet.Size]uint8 // position -> symbol index
	inv [alphabet.Size]uint8 // symbol index -> position
}

// NewPermutation validates s as 26 distinct uppercase letters.
func NewPermutation(s string) (Permutation, error) {
	var p Permutation
	rs := []rune(s)
	if len(rs) != alphabet.Size {
		return Permutation{}, fmt.Errorf("%w: want %d symbols, got %d", ErrInvalidPermutation, alphabet.Size, len(rs))
	}
	var seen [alphabet.Size]bool
	for i, r := range rs {
		j, ok := alphabet.Index(r)
		if !ok {
			return Permutation{}, fmt.Errorf("%w: symbol %q at %d is not in the alphabet", ErrInvalidPermutation, r, i+1)
		}
		if seen[j] {
			return Permutation{}, fmt.Errorf("%w: symbol %q repeated at %d", ErrInvalidPermutation, r, i+1)
		}
		seen[j] = true
		p.fwd[i] = uint8(j)
		p.inv[j] = uint8(i)
	}
	return p, nil
}

// At returns the symbol wired at position i (taken mod 26).
func (p Permutation) At(i int) rune {
	r, _ := alphabet.Letter(int(p.fwd[alphabet.Mod(i)]))
	return r
}

// IndexOf returns the position at which r is wired.
func (p Permutation) IndexOf(r rune) (int, error) {
	j, ok := alphabet.Index(r)
	if !ok {
		return 0, fmt.Errorf("%w: %q", alphabet.ErrNotEncodable, r)
	}
	return int(p.inv[j]), nil
}

// indexAt and positionOf are the index-only forms used on the cipher path.
func (p Permutation) indexAt(i int) int    { return int(p.fwd[i]) }
func (p Permutation) positionOf(j int) int { return int(p.inv[j]) }

func (p Permutation) String() string {
	b := make([]byte, alphabet.Size)
	for i, j := range p.fwd {
		b[i] = alphabet.Letters[j]
	}
	return string(b)
}
