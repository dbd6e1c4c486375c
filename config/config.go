/*
Package config holds the configuration of the styling engine.

Configuration is read from YAML files. Every field has a default; a
configuration file only needs to contain the values to change:

	quirks_mode: auto            # auto | no-quirks | limited-quirks | quirks
	user_agent_styles: ua.css    # empty for the built-in user-agent stylesheet
	trace_level: info            # error | info | debug
	stylesheets: [book.css]      # additional author stylesheets
	groups: [Margins, Border]    # property groups to output

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/styling/dom/style"
	"github.com/npillmayer/styling/dom/style/cssom"
	"go.uber.org/multierr"
	yaml "gopkg.in/yaml.v3"
)

// tracer traces with key 'styling.config'.
func tracer() tracing.Trace {
	return tracing.Select("styling.config")
}

// Config is the configuration for styling documents.
type Config struct {
	QuirksMode      string   `yaml:"quirks_mode"`
	UserAgentStyles string   `yaml:"user_agent_styles,omitempty"`
	TraceLevel      string   `yaml:"trace_level"`
	Stylesheets     []string `yaml:"stylesheets,omitempty"`
	Groups          []string `yaml:"groups"`
}

// QuirksAuto lets the document decide about its quirks mode.
const QuirksAuto = "auto"

var quirksModes = map[string]cssom.QuirksMode{
	"no-quirks":      cssom.NoQuirks,
	"limited-quirks": cssom.LimitedQuirks,
	"quirks":         cssom.Quirks,
}

// Defaults returns the default configuration.
func Defaults() *Config {
	return &Config{
		QuirksMode: QuirksAuto,
		TraceLevel: "error",
		Groups: []string{
			style.PGDisplay,
			style.PGMargins,
			style.PGPadding,
			style.PGBorder,
		},
	}
}

// Load reads a configuration file. Values not present in the file keep
// their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	tracer().Debugf("loading configuration from %s", path)
	return Parse(data)
}

// Parse decodes YAML configuration data on top of the defaults and
// validates the result. Unknown fields are errors.
func Parse(data []byte) (*Config, error) {
	cfg := Defaults()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values of a configuration. All the problems found
// are reported in the returned error.
func (cfg *Config) Validate() error {
	var err error
	if q := strings.ToLower(cfg.QuirksMode); q != QuirksAuto && q != "" {
		if _, ok := quirksModes[q]; !ok {
			err = multierr.Append(err, fmt.Errorf("invalid quirks mode %q", cfg.QuirksMode))
		}
	}
	switch strings.ToLower(cfg.TraceLevel) {
	case "", "error", "info", "debug":
	default:
		err = multierr.Append(err, fmt.Errorf("invalid trace level %q", cfg.TraceLevel))
	}
	for _, g := range cfg.Groups {
		if len(style.LonghandsInGroup(g)) == 0 {
			err = multierr.Append(err, fmt.Errorf("unknown property group %q", g))
		}
	}
	for _, s := range cfg.Stylesheets {
		if strings.TrimSpace(s) == "" {
			err = multierr.Append(err, errors.New("empty stylesheet path"))
		}
	}
	return err
}

// Quirks returns the configured quirks mode. If ok is false, the
// document's own quirks mode should be used.
func (cfg *Config) Quirks() (q cssom.QuirksMode, ok bool) {
	q, ok = quirksModes[strings.ToLower(cfg.QuirksMode)]
	return
}

// Level returns the configured trace level.
func (cfg *Config) Level() tracing.TraceLevel {
	if cfg.TraceLevel == "" {
		return tracing.LevelError
	}
	return tracing.TraceLevelFromString(cfg.TraceLevel)
}

// Dump returns the configuration in YAML format.
func (cfg *Config) Dump() ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %w", err)
	}
	return data, nil
}
