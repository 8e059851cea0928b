// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"enigma-core/catalog"
	"enigma-core/machine"
)

// Config holds everything a run needs besides its input.
type Config struct {
	Machine MachineConfig `yaml:"machine"`
	Logging LoggingConfig `yaml:"logging"`
	Batch   BatchConfig   `yaml:"batch"`
}

// MachineConfig selects the wheels, left to right, and their start positions.
type MachineConfig struct {
	Rotors    []string `yaml:"rotors"`
	Reflector string   `yaml:"reflector"`
	Positions string   `yaml:"positions"` // "AAA" or "0,0,0"
}

// LoggingConfig configures the zap logger. Logs always go to stderr.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console, json
}

// BatchConfig configures multi-record runs.
type BatchConfig struct {
	Workers       int    `yaml:"workers"` // 0 = all CPUs
	Output        string `yaml:"output"`  // text, json, jsonl
	Header        bool   `yaml:"header"`
	EmptyExitCode int    `yaml:"empty_exit_code"`
}

func DefaultConfig() *Config {
	return &Config{
		Machine: MachineConfig{
			Rotors:    []string{"I", "II", "III"},
			Reflector: "B",
			Positions: "AAA",
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
		Batch: BatchConfig{
			Workers:       0,
			Output:        "text",
			Header:        true,
			EmptyExitCode: 1,
		},
	}
}

// Load reads a YAML file over the defaults. A missing file is not an error.
// Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		case errors.Is(err, os.ErrNotExist):
		default:
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Marshal renders the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

// Save writes the configuration as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := c.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("ENIGMA_ROTORS"); v != "" {
		c.Machine.Rotors = SplitList(v)
	}
	if v := os.Getenv("ENIGMA_REFLECTOR"); v != "" {
		c.Machine.Reflector = v
	}
	if v := os.Getenv("ENIGMA_POSITIONS"); v != "" {
		c.Machine.Positions = v
	}
	if v := os.Getenv("ENIGMA_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// Validate checks names against the catalog and the remaining fields for range.
func (c *Config) Validate() error {
	if len(c.Machine.Rotors) != machine.Slots {
		return fmt.Errorf("machine.rotors: want %d names, got %d", machine.Slots, len(c.Machine.Rotors))
	}
	if _, err := catalog.Rotors(c.Machine.Rotors...); err != nil {
		return fmt.Errorf("machine.rotors: %w", err)
	}
	if _, err := catalog.Reflector(c.Machine.Reflector); err != nil {
		return fmt.Errorf("machine.reflector: %w", err)
	}
	if _, err := ParseOffsets(c.Machine.Positions); err != nil {
		return fmt.Errorf("machine.positions: %w", err)
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: invalid %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: invalid %q", c.Logging.Format)
	}
	if c.Batch.Workers < 0 {
		return errors.New("batch.workers must be ≥ 0")
	}
	switch c.Batch.Output {
	case "text", "json", "jsonl":
	default:
		return fmt.Errorf("batch.output: invalid %q", c.Batch.Output)
	}
	if c.Batch.EmptyExitCode < 0 || c.Batch.EmptyExitCode > 255 {
		return errors.New("batch.empty_exit_code must be between 0 and 255")
	}
	return nil
}

// NewMachine builds a fresh session from the configured catalog names.
func (c *Config) NewMachine() (*machine.Machine, error) {
	rs, err := catalog.Rotors(c.Machine.Rotors...)
	if err != nil {
		return nil, err
	}
	ref, err := catalog.Reflector(c.Machine.Reflector)
	if err != nil {
		return nil, err
	}
	offs, err := ParseOffsets(c.Machine.Positions)
	if err != nil {
		return nil, err
	}
	return machine.New(rs, ref, offs...)
}

// ParseOffsets accepts window letters ("ADU") or comma-separated numbers
// ("0,3,20"). Numbers must lie in [0,25].
func ParseOffsets(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if !strings.ContainsAny(s, ",0123456789") {
		return machine.ParsePositions(s)
	}
	parts := SplitList(s)
	if len(parts) != machine.Slots {
		return nil, fmt.Errorf("%w: want %d offsets, got %d", machine.ErrOffsetCountMismatch, machine.Slots, len(parts))
	}
	out := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("offset %d: %w", i+1, err)
		}
		if n < 0 || n > 25 {
			return nil, fmt.Errorf("offset %d: %d out of range 0..25", i+1, n)
		}
		out[i] = n
	}
	return out, nil
}

// SplitList splits on commas and whitespace, dropping empties.
func SplitList(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' })
}
