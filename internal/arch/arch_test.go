// internal/arch/arch_test.go
package arch

import (
	"bytes"
	"encoding/json"
	"io"
	"os/exec"
	"strings"
	"testing"
)

type pkg struct {
	ImportPath string
	Imports    []string
}

const module = "enigma/"

// Lower layers must not reach up into the command surface.
var bans = map[string][]string{
	"enigma/pkg/": {"enigma/internal/", "enigma/cmd/"},
	"enigma/internal/config": {
		"enigma/internal/cli", "enigma/internal/logging", "enigma/internal/batch",
		"enigma/internal/writers", "enigma/cmd/",
	},
	"enigma/internal/batch": {
		"enigma/internal/cli", "enigma/internal/writers", "enigma/internal/pretty",
		"enigma/internal/lampboard", "enigma/internal/config", "enigma/cmd/",
	},
	"enigma/internal/writers": {
		"enigma/internal/cli", "enigma/internal/lampboard", "enigma/internal/pretty", "enigma/cmd/",
	},
	"enigma/internal/jsonlutil": {"enigma/internal/", "enigma/cmd/"},
	"enigma/internal/pretty": {
		"enigma/internal/cli", "enigma/internal/batch", "enigma/internal/writers", "enigma/cmd/",
	},
	"enigma/internal/lampboard": {
		"enigma/internal/cli", "enigma/internal/batch", "enigma/internal/writers", "enigma/cmd/",
	},
}

func TestImportBoundaries(t *testing.T) {
	cmd := exec.Command("go", "list", "-json", "./...")
	cmd.Dir = "../.."
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list: %v", err)
	}
	dec := json.NewDecoder(&out)

	var violations []string
	seen := 0
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !strings.HasPrefix(p.ImportPath, module) {
			continue
		}
		seen++
		for prefix, forbidden := range bans {
			if !strings.HasPrefix(p.ImportPath, prefix) {
				continue
			}
			for _, dep := range p.Imports {
				for _, ban := range forbidden {
					if strings.HasPrefix(dep, ban) {
						violations = append(violations, p.ImportPath+" → "+dep)
					}
				}
			}
		}
	}

	if seen == 0 {
		t.Fatalf("go list returned no %s packages", module)
	}
	if len(violations) > 0 {
		t.Fatalf("import boundary violations:\n  %s", strings.Join(violations, "\n  "))
	}
}
