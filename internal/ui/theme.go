package ui

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// themeFS embeds the default color theme.
//
//go:embed theme.json
var themeFS embed.FS

// ThemeDef is the JSON form of a color theme. Colors are hex strings.
type ThemeDef struct {
	Digits     []string `json:"digits"`     // Colors for counts 1 through 8
	Closed     string   `json:"closed"`     // Closed cell glyph
	Flag       string   `json:"flag"`       // Flag background, wrong-flag foreground
	Mine       string   `json:"mine"`       // Mine glyph and detonation background
	Reveal     string   `json:"reveal"`     // Background behind mines after a win
	Cursor     string   `json:"cursor"`     // Cursor background
	Text       string   `json:"text"`       // Status and message lines
	Background string   `json:"background"` // Screen background
}

// Palette is a theme resolved to terminal colors.
type Palette struct {
	Digits     [8]tcell.Color
	Closed     tcell.Color
	Flag       tcell.Color
	Mine       tcell.Color
	Reveal     tcell.Color
	Cursor     tcell.Color
	Text       tcell.Color
	Background tcell.Color
}

// load reads and unmarshals a JSON file from the embedded filesystem.
func load[T any](filename string) (T, error) {
	var result T

	content, err := themeFS.ReadFile(filename)
	if err != nil {
		return result, fmt.Errorf("failed to read embedded file %s: %w", filename, err)
	}

	if err := json.Unmarshal(content, &result); err != nil {
		return result, fmt.Errorf("failed to parse JSON from %s: %w", filename, err)
	}

	return result, nil
}

// LoadPalette loads the embedded theme.
func LoadPalette() (*Palette, error) {
	def, err := load[ThemeDef]("theme.json")
	if err != nil {
		return nil, err
	}
	return def.Palette()
}

// MustLoadPalette loads the embedded theme, panicking on error.
func MustLoadPalette() *Palette {
	p, err := LoadPalette()
	if err != nil {
		panic(err)
	}
	return p
}

// Palette resolves every hex color in the theme.
func (d ThemeDef) Palette() (*Palette, error) {
	if len(d.Digits) != 8 {
		return nil, fmt.Errorf("theme needs 8 digit colors, got %d", len(d.Digits))
	}

	p := &Palette{}
	for i, hex := range d.Digits {
		c, err := ParseHexColor(hex)
		if err != nil {
			return nil, fmt.Errorf("digit %d: %w", i+1, err)
		}
		p.Digits[i] = c
	}

	fields := []struct {
		name string
		hex  string
		dst  *tcell.Color
	}{
		{"closed", d.Closed, &p.Closed},
		{"flag", d.Flag, &p.Flag},
		{"mine", d.Mine, &p.Mine},
		{"reveal", d.Reveal, &p.Reveal},
		{"cursor", d.Cursor, &p.Cursor},
		{"text", d.Text, &p.Text},
		{"background", d.Background, &p.Background},
	}
	for _, f := range fields {
		c, err := ParseHexColor(f.hex)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f.name, err)
		}
		*f.dst = c
	}

	return p, nil
}
