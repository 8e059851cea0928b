// core/catalog/catalog.go
package catalog

import (
	"fmt"
	"sort"
	"strings"

	"enigma-core/rotor"
)

// Historical wheel wirings. Names are matched case-insensitively.
var rotors = map[string]*rotor.Rotor{
	"I":   rotor.MustRotor("I", "EKMFLGDQVZNTOWYHXUSPAIBRCJ", 'R'),
	"II":  rotor.MustRotor("II", "AJDKSIRUXBLHWTMCQGZNPYFVOE", 'F'),
	"III": rotor.MustRotor("III", "BDFHJLCPRTXVZNYEIWGAKMUSQO", 'W'),
	"IV":  rotor.MustRotor("IV", "ESOVPZJAYQUIRHXLNFTGKDCMWB", 'K'),
	"V":   rotor.MustRotor("V", "VZBRGITYUPSDNHLXAWMJQOFECK", 'A'),

	// M3 / M4 additions, two notches each
	"VI":   rotor.MustRotor("VI", "JPGVOUMFYQBENHZRDKASXLICTW", 'A', 'N'),
	"VII":  rotor.MustRotor("VII", "NZJHGRCXMYSWBOUFAIVLPEKQDT", 'A', 'N'),
	"VIII": rotor.MustRotor("VIII", "FKQHTLXOCBJSPDZRAMEWNIUYGV", 'A', 'N'),

	// Greek wheels, meant for the thin reflectors
	"BETA":  rotor.MustRotor("Beta", "LEYJVCNIXWPBQMDRTAKZGFUHOS", 'A', 'N'),
	"GAMMA": rotor.MustRotor("Gamma", "FSOKANUERHMBTIYCWLQPZXVGJD", 'A', 'N'),
}

var reflectors = map[string]*rotor.Reflector{
	"B":      rotor.MustReflector("B", "YRUHQSLDPXNGOKMIEBFZCWVJAT"),
	"C":      rotor.MustReflector("C", "FVPJIAOYEDRZXWGCTKUQSBNMHL"),
	"B-THIN": rotor.MustReflector("B-Thin", "ENKQAUYWJICOPBLMDXZVFTHRGS"),
	"C-THIN": rotor.MustReflector("C-Thin", "RDOBJNTKVEHMLFCWZAXGYIPSUQ"),
}

// Rotor returns the shared, read-only wheel registered under name.
func Rotor(name string) (*rotor.Rotor, error) {
	if r, ok := rotors[key(name)]; ok {
		return r, nil
	}
	return nil, fmt.Errorf("unknown rotor %q; known: %s", name, strings.Join(RotorNames(), " "))
}

// Reflector returns the shared, read-only reflector registered under name.
func Reflector(name string) (*rotor.Reflector, error) {
	if r, ok := reflectors[key(name)]; ok {
		return r, nil
	}
	return nil, fmt.Errorf("unknown reflector %q; known: %s", name, strings.Join(ReflectorNames(), " "))
}

// Rotors resolves a list of names in order.
func Rotors(names ...string) ([]*rotor.Rotor, error) {
	out := make([]*rotor.Rotor, 0, len(names))
	for _, n := range names {
		r, err := Rotor(n)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

// RotorNames lists display names: I..VIII first, then the Greek wheels.
func RotorNames() []string {
	out := make([]string, 0, len(rotors))
	for _, r := range rotors {
		out = append(out, r.Name())
	}
	sort.Slice(out, func(i, j int) bool {
		ri, rj := romanRank(out[i]), romanRank(out[j])
		if ri != rj {
			return ri < rj
		}
		return out[i] < out[j]
	})
	return out
}

func ReflectorNames() []string {
	out := make([]string, 0, len(reflectors))
	for _, r := range reflectors {
		out = append(out, r.Name())
	}
	sort.Strings(out)
	return out
}

func key(name string) string { return strings.ToUpper(strings.TrimSpace(name)) }

var roman = map[string]int{"I": 1, "II": 2, "III": 3, "IV": 4, "V": 5, "VI": 6, "VII": 7, "VIII": 8}

func romanRank(name string) int {
	if n, ok := roman[name]; ok {
		return n
	}
	return len(roman) + 1
}
