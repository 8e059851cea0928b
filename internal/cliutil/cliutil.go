// internal/cliutil/cliutil.go
package cliutil

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Stdin is the path that selects standard input.
const Stdin = "-"

func hasGlobMeta(s string) bool { return strings.ContainsAny(s, "*?[") }

// ExpandInputs expands globs among input paths, keeping order. An empty
// list means stdin. A glob that matches nothing is an error so a typo does
// not silently read zero records.
func ExpandInputs(args []string) ([]string, error) {
	if len(args) == 0 {
		return []string{Stdin}, nil
	}
	var out []string
	for _, a := range args {
		if a == Stdin || !hasGlobMeta(a) {
			out = append(out, a)
			continue
		}
		m, err := filepath.Glob(a)
		if err != nil {
			return nil, fmt.Errorf("bad glob %q: %w", a, err)
		}
		if len(m) == 0 {
			return nil, fmt.Errorf("no input matched %q", a)
		}
		out = append(out, m...)
	}
	return out, nil
}
