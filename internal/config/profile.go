package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/shinji-kodama/align/internal/model"
)

// Profile holds the values a profile file may set. Nil fields were not
// present in the file and leave the built-in defaults in place.
type Profile struct {
	// Width is the target column count (1-255).
	Width *int `json:"width,omitempty" yaml:"width,omitempty"`

	// Mode is one of left, right, center or justify.
	Mode *string `json:"mode,omitempty" yaml:"mode,omitempty"`
}

// Settings is the fully resolved run configuration.
type Settings struct {
	Width int
	Mode  model.Alignment
}

// Defaults returns the settings used when nothing else is specified.
func Defaults() Settings {
	return Settings{Width: model.DefaultWidth, Mode: model.DefaultAlignment}
}

// Load reads and validates the profile at path. The format is picked from
// the file extension.
//
// Every failure is returned as a CLIError with ExitConfigError so the
// command layer can exit with the right code.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, model.WrapCLIError(model.ExitConfigError,
				fmt.Sprintf("profile not found: %s", path), err)
		}
		return nil, model.WrapCLIError(model.ExitConfigError,
			fmt.Sprintf("failed to read profile %s", path), err)
	}

	profile, err := Parse(data, formatOf(path))
	if err != nil {
		return nil, model.WrapCLIError(model.ExitConfigError,
			fmt.Sprintf("invalid profile %s", path), err)
	}
	return profile, nil
}

// Format identifies a profile encoding.
type Format string

const (
	// FormatYAML is YAML 1.2 as understood by yaml.v3.
	FormatYAML Format = "yaml"

	// FormatJSONC is JSON that may contain comments and trailing commas.
	FormatJSONC Format = "jsonc"
)

// formatOf maps a file extension to a Format. Unknown extensions are read
// as YAML, which also accepts plain JSON.
func formatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		return FormatJSONC
	default:
		return FormatYAML
	}
}

// Parse decodes and validates profile data in the given format.
func Parse(data []byte, format Format) (*Profile, error) {
	var p Profile
	switch format {
	case FormatJSONC:
		if err := json.Unmarshal(jsonc.ToJSON(data), &p); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported profile format %q", format)
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks the fields that are present.
func (p *Profile) Validate() error {
	if p.Width != nil {
		if err := model.ValidateWidth(*p.Width); err != nil {
			return fmt.Errorf("profile width: %w", err)
		}
	}
	if p.Mode != nil {
		if _, err := model.ParseAlignment(*p.Mode); err != nil {
			return fmt.Errorf("profile mode: %w", err)
		}
	}
	return nil
}

// Apply overlays the fields present in p onto s and returns the result.
// p must have passed Validate.
func (p *Profile) Apply(s Settings) Settings {
	if p == nil {
		return s
	}
	if p.Width != nil {
		s.Width = *p.Width
	}
	if p.Mode != nil {
		s.Mode = model.Alignment(*p.Mode)
	}
	return s
}
