package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/styling/dom/style"
	"github.com/npillmayer/styling/dom/style/cssom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestDefaults(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	_, ok := cfg.Quirks()
	assert.False(t, ok)
	assert.Equal(t, tracing.LevelError, cfg.Level())
	assert.Contains(t, cfg.Groups, style.PGMargins)
}

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(`
quirks_mode: limited-quirks
trace_level: debug
stylesheets: [a.css, b.css]
groups: [Font]
`))
	require.NoError(t, err)
	q, ok := cfg.Quirks()
	assert.True(t, ok)
	assert.Equal(t, cssom.LimitedQuirks, q)
	assert.Equal(t, tracing.LevelDebug, cfg.Level())
	assert.Equal(t, []string{"a.css", "b.css"}, cfg.Stylesheets)
	assert.Equal(t, []string{"Font"}, cfg.Groups)
	assert.Empty(t, cfg.UserAgentStyles)
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte("quirks: yes\n"))
	assert.Error(t, err)
}

func TestValidateCollectsErrors(t *testing.T) {
	cfg := Defaults()
	cfg.QuirksMode = "sometimes"
	cfg.TraceLevel = "verbose"
	cfg.Groups = []string{"Nonsense"}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 3)
}

func TestLoad(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styling.config")
	defer teardown()
	//
	path := filepath.Join(t.TempDir(), "styling.yaml")
	require.NoError(t, os.WriteFile(path, []byte("user_agent_styles: ua.css\n"), 0o600))
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "ua.css", cfg.UserAgentStyles)
	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
	data, err := cfg.Dump()
	require.NoError(t, err)
	again, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}
