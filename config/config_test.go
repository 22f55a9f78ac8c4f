package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "flik.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 300, cfg.Pagination.MaxLogical)
	assert.Equal(t, 20, cfg.Pagination.NewlineCost)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
pagination:
  max_logical: 500
sentence:
  terminators: ".!?"
normalize:
  nfc: true
render:
  font_path: /fonts/NanumMyeongjo.ttf
log_level: debug
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 500, cfg.Pagination.MaxLogical)
	assert.Equal(t, 20, cfg.Pagination.NewlineCost, "unset keys keep defaults")
	assert.Equal(t, ".!?", cfg.Sentence.Terminators)
	assert.Equal(t, Default().Sentence.Closers, cfg.Sentence.Closers)
	assert.True(t, cfg.Normalize.NFC)
	assert.Equal(t, "/fonts/NanumMyeongjo.ttf", cfg.Render.FontPath)
	assert.Equal(t, "debug", cfg.LogLevel)

	p := cfg.Paginator()
	assert.Equal(t, 500, p.MaxLogical)
	assert.False(t, p.Splitter.IsTerminator('…'))
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "zero capacity", body: "pagination:\n  max_logical: 0\n"},
		{name: "negative separator", body: "pagination:\n  newline_cost: -1\n"},
		{name: "separator too large", body: "pagination:\n  max_logical: 20\n  newline_cost: 20\n"},
		{name: "no terminators", body: "sentence:\n  terminators: \"\"\n"},
		{name: "bad regex", body: "normalize:\n  null_marker: \"(\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config")

	_, err = Load(writeConfig(t, "pagination: [1, 2"))
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestNormalizer(t *testing.T) {
	cfg := Default()
	n, err := cfg.Normalizer()
	require.NoError(t, err)
	assert.Nil(t, n.Discard)
	assert.Equal(t, "", n.Normalize(`\n`))

	cfg.Normalize.NullMarker = `^-$`
	cfg.Normalize.NFC = true
	n, err = cfg.Normalizer()
	require.NoError(t, err)
	assert.True(t, n.NFC)
	assert.Equal(t, "", n.Normalize("-"))
	assert.Equal(t, `\n`, n.Normalize(`\n`))
}
