package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shinji-kodama/align/internal/model"
)

func intPtr(n int) *int       { return &n }
func strPtr(s string) *string { return &s }

// TestLoad_Fixtures loads each profile fixture under testdata/.
func TestLoad_Fixtures(t *testing.T) {
	tests := []struct {
		file string
		want Settings
	}{
		{file: "narrow.yaml", want: Settings{Width: 50, Mode: model.AlignLeft}},
		{file: "centered.jsonc", want: Settings{Width: 40, Mode: model.AlignCenter}},
		{file: "width-only.yml", want: Settings{Width: 100, Mode: model.AlignJustify}},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			p, err := Load(filepath.Join("testdata", tt.file))
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.Apply(Defaults()))
		})
	}
}

// TestLoad_Errors checks that every failure carries ExitConfigError.
func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	badYAML := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(badYAML, []byte("width: [1, 2"), 0o644))
	wideYAML := filepath.Join(dir, "wide.yaml")
	require.NoError(t, os.WriteFile(wideYAML, []byte("width: 300\n"), 0o644))

	tests := []struct {
		name string
		path string
	}{
		{name: "missing file", path: filepath.Join(dir, "nope.yaml")},
		{name: "malformed yaml", path: badYAML},
		{name: "width out of range", path: wideYAML},
		{name: "unknown mode", path: filepath.Join("testdata", "bad-mode.json")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path)
			require.Error(t, err)

			var cliErr *model.CLIError
			require.True(t, errors.As(err, &cliErr))
			assert.Equal(t, model.ExitConfigError, cliErr.Code)
		})
	}
}

func TestLoad_MissingFileIsNotExist(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Contains(t, err.Error(), "profile not found")
}

// TestParse covers both formats directly.
func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		format   Format
		want     *Profile
		hasError bool
	}{
		{name: "yaml full", data: "width: 30\nmode: right\n", format: FormatYAML, want: &Profile{Width: intPtr(30), Mode: strPtr("right")}},
		{name: "yaml empty", data: "", format: FormatYAML, want: &Profile{}},
		{name: "yaml unknown fields ignored", data: "width: 30\ncolor: blue\n", format: FormatYAML, want: &Profile{Width: intPtr(30)}},
		{name: "json as yaml", data: `{"mode": "left"}`, format: FormatYAML, want: &Profile{Mode: strPtr("left")}},
		{name: "jsonc comments", data: "{\n// c\n\"width\": 12,\n}", format: FormatJSONC, want: &Profile{Width: intPtr(12)}},
		{name: "json wrong type", data: `{"width": "wide"}`, format: FormatJSONC, hasError: true},
		{name: "zero width", data: "width: 0", format: FormatYAML, hasError: true},
		{name: "capitalised mode", data: "mode: Left", format: FormatYAML, hasError: true},
		{name: "unknown format", data: "width = 3", format: Format("toml"), hasError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse([]byte(tt.data), tt.format)
			if tt.hasError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatOf(t *testing.T) {
	assert.Equal(t, FormatYAML, formatOf("a.yaml"))
	assert.Equal(t, FormatYAML, formatOf("a.YML"))
	assert.Equal(t, FormatJSONC, formatOf("a.json"))
	assert.Equal(t, FormatJSONC, formatOf("dir/a.jsonc"))
	assert.Equal(t, FormatYAML, formatOf("profile"))
}

func TestProfile_ApplyNil(t *testing.T) {
	var p *Profile
	assert.Equal(t, Defaults(), p.Apply(Defaults()))
}
