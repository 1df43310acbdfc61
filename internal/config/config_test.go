package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brainit/fastpath/internal/engine"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault_Valid(t *testing.T) {
	cfg := Default()
	require.NoError(t, Validate(&cfg))

	r, err := cfg.Recommender()
	require.NoError(t, err)
	assert.Equal(t, engine.DefaultPolicy(), r.Policy())
	assert.Equal(t, engine.Recommend(5), r.Recommend(5))
}

func TestLoad_Full(t *testing.T) {
	path := writeConfig(t, `
version: 1
thresholds:
  mid: 3
  top: 5
offers:
  top:
    label: Full automation
    cta: Let's talk
    link: https://example.com/top
ui:
  theme: light
  boolean_style: checkbox
  skip_splash: true
log:
  file: /tmp/fastpath.log
  debug: true
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, engine.Policy{MidMin: 3, TopMin: 5}, cfg.Thresholds)
	assert.Equal(t, ThemeLight, cfg.UI.Theme)
	assert.Equal(t, BooleanStyleCheckbox, cfg.UI.BooleanStyle)
	assert.True(t, cfg.UI.SkipSplash)
	assert.Equal(t, "/tmp/fastpath.log", cfg.Log.File)
	assert.True(t, cfg.Log.Debug)

	r, err := cfg.Recommender()
	require.NoError(t, err)
	top := r.Recommend(5)
	assert.Equal(t, engine.TierTop, top.Tier)
	assert.Equal(t, "Full automation", top.Label)
	assert.Equal(t, engine.DefaultOffers()[engine.TierMid], r.Recommend(3).Offer)
}

func TestLoad_PartialUsesDefaults(t *testing.T) {
	path := writeConfig(t, "ui:\n  theme: light\n")
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, CurrentVersion, cfg.Version)
	assert.Equal(t, engine.DefaultPolicy(), cfg.Thresholds)
	assert.Equal(t, BooleanStyleYesNo, cfg.UI.BooleanStyle)
	assert.Len(t, cfg.Offers, 3)
}

func TestLoad_PartialOfferKeepsDefaultCopy(t *testing.T) {
	path := writeConfig(t, "offers:\n  mid:\n    link: https://example.com/book\n")
	cfg, err := Load(path)
	require.NoError(t, err)

	mid := cfg.Offers["mid"]
	assert.Equal(t, "https://example.com/book", mid.Link)
	assert.Equal(t, "Book now", mid.CTA)
}

func TestLoad_EmptyAndCommentOnly(t *testing.T) {
	for _, body := range []string{"", "# nothing here\n"} {
		cfg, err := Load(writeConfig(t, body))
		require.NoError(t, err, "body %q", body)
		assert.Equal(t, Default(), cfg)
	}
}

func TestLoad_SchemaRejects(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown top-level key", "colour: blue\n"},
		{"bad theme", "ui:\n  theme: neon\n"},
		{"unknown tier", "offers:\n  platinum:\n    label: x\n"},
		{"threshold not integer", "thresholds:\n  mid: three\n"},
		{"negative threshold", "thresholds:\n  mid: -1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "schema")
		})
	}
}

func TestLoad_SemanticIssues(t *testing.T) {
	_, err := Load(writeConfig(t, "version: 2\nthresholds:\n  mid: 6\n  top: 4\n"))
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	fields := make([]string, 0, len(verr.Issues))
	for _, is := range verr.Issues {
		fields = append(fields, is.Field)
	}
	assert.Contains(t, fields, "version")
	assert.Contains(t, fields, "thresholds.top")
}

func TestLoad_MalformedYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "ui: [unterminated\n"))
	require.Error(t, err)
}

func TestLoadOrDefault(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.yaml")

	cfg, err := LoadOrDefault(missing, false)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	_, err = LoadOrDefault(missing, true)
	require.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"FASTPATH_THEME":         "LIGHT",
		"FASTPATH_BOOLEAN_STYLE": "checkbox",
		"FASTPATH_LOG_FILE":      "/var/log/fastpath.log",
		"FASTPATH_DEBUG":         "true",
	}
	cfg := Default()
	require.NoError(t, ApplyEnv(&cfg, func(k string) string { return env[k] }))

	assert.Equal(t, ThemeLight, cfg.UI.Theme)
	assert.Equal(t, BooleanStyleCheckbox, cfg.UI.BooleanStyle)
	assert.Equal(t, "/var/log/fastpath.log", cfg.Log.File)
	assert.True(t, cfg.Log.Debug)
}

func TestApplyEnv_Invalid(t *testing.T) {
	cfg := Default()
	err := ApplyEnv(&cfg, func(k string) string {
		if k == "FASTPATH_DEBUG" {
			return "maybe"
		}
		return ""
	})
	assert.Error(t, err)

	cfg = Default()
	err = ApplyEnv(&cfg, func(k string) string {
		if k == "FASTPATH_THEME" {
			return "sepia"
		}
		return ""
	})
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(Default())
	require.NoError(t, err)

	cfg, err := Parse(data)
	require.NoError(t, err)
	Normalize(&cfg)
	assert.Equal(t, Default(), cfg)
}

func TestResolvePath(t *testing.T) {
	t.Setenv("FASTPATH_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg")

	p, explicit, err := ResolvePath("/flag.yaml")
	require.NoError(t, err)
	assert.Equal(t, "/flag.yaml", p)
	assert.True(t, explicit)

	p, explicit, err = ResolvePath("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/xdg", "fastpath", "config.yaml"), p)
	assert.False(t, explicit)

	t.Setenv("FASTPATH_CONFIG", "/env.yaml")
	p, explicit, err = ResolvePath("")
	require.NoError(t, err)
	assert.Equal(t, "/env.yaml", p)
	assert.True(t, explicit)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("FASTPATH_THEME", "")
	os.Unsetenv("FASTPATH_THEME")

	require.NoError(t, LoadDotEnv())

	require.NoError(t, os.WriteFile(filepath.Join(dir, EnvFile), []byte("FASTPATH_THEME=light\n"), 0o644))
	require.NoError(t, LoadDotEnv())
	assert.Equal(t, "light", os.Getenv("FASTPATH_THEME"))
}
