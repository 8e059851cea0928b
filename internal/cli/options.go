// internal/cli/options.go
package cli

import (
	"github.com/spf13/pflag"

	"enigma/internal/config"
)

// GlobalOptions are the persistent flags shared by every command. A flag
// only overrides the config file when it was given on the command line.
type GlobalOptions struct {
	ConfigPath string
	Rotors     []string
	Reflector  string
	Positions  string
	LogLevel   string
	LogFormat  string
}

// Register binds the options to fs.
func (o *GlobalOptions) Register(fs *pflag.FlagSet) {
	fs.StringVarP(&o.ConfigPath, "config", "c", "", "YAML config file")
	fs.StringSliceVarP(&o.Rotors, "rotors", "r", nil, "three rotor names, left to right (e.g. I,II,III)")
	fs.StringVarP(&o.Reflector, "reflector", "R", "", "reflector name (B, C, B-Thin, C-Thin)")
	fs.StringVarP(&o.Positions, "positions", "p", "", `start positions as letters ("ADU") or numbers ("0,3,20")`)
	fs.StringVar(&o.LogLevel, "log-level", "", "debug, info, warn or error")
	fs.StringVar(&o.LogFormat, "log-format", "", "console or json")
}

// Resolve loads the config file, applies the flags set in fs and validates
// the result.
func (o *GlobalOptions) Resolve(fs *pflag.FlagSet) (*config.Config, error) {
	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return nil, err
	}
	if fs.Changed("rotors") {
		cfg.Machine.Rotors = o.Rotors
	}
	if fs.Changed("reflector") {
		cfg.Machine.Reflector = o.Reflector
	}
	if fs.Changed("positions") {
		cfg.Machine.Positions = o.Positions
	}
	if fs.Changed("log-level") {
		cfg.Logging.Level = o.LogLevel
	}
	if fs.Changed("log-format") {
		cfg.Logging.Format = o.LogFormat
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
