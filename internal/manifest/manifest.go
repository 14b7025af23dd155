package manifest

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/glizzus/assetgen/internal/placeholder"
	"github.com/glizzus/assetgen/internal/recolor"
	"gopkg.in/yaml.v3"
)

// Manifest lists the assets a batch run produces.
type Manifest struct {
	Audio   AudioSection  `yaml:"audio"`
	Sprites SpriteSection `yaml:"sprites"`
}

type AudioSection struct {
	Tracks []Track `yaml:"tracks"`
}

type Track struct {
	File    string  `yaml:"file"`
	Seconds float64 `yaml:"seconds"`
}

type SpriteSection struct {
	Variations []Variation `yaml:"variations"`
}

type Variation struct {
	Name string `yaml:"name"`
	// Output is relative to the sprite directory unless absolute.
	Output string `yaml:"output"`
	Rules  []Rule `yaml:"rules"`
}

// Color is an [r, g, b] triple.
type Color []int

type Rule struct {
	From Color `yaml:"from,flow"`
	To   Color `yaml:"to,flow"`
}

// Load reads and validates a YAML manifest. Unknown keys are rejected.
func Load(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open manifest %s: %w", path, err)
	}
	defer f.Close()

	m, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}
	return m, nil
}

// Decode parses and validates a YAML manifest from r.
func Decode(r io.Reader) (*Manifest, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var m Manifest
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("failed to parse: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	return &m, nil
}

// Encode writes m as YAML.
func (m *Manifest) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return err
	}
	return enc.Close()
}

// Validate reports every problem found in the manifest.
func (m *Manifest) Validate() error {
	var errs []error

	files := make(map[string]struct{})
	for i, t := range m.Audio.Tracks {
		if t.File == "" {
			errs = append(errs, fmt.Errorf("audio.tracks[%d]: file cannot be empty", i))
		}
		if t.Seconds < 0 {
			errs = append(errs, fmt.Errorf("audio.tracks[%d]: seconds must not be negative, got %v", i, t.Seconds))
		}
		if _, ok := files[t.File]; ok {
			errs = append(errs, fmt.Errorf("audio.tracks[%d]: duplicate file %q", i, t.File))
		}
		files[t.File] = struct{}{}
	}

	outputs := make(map[string]struct{})
	for i, v := range m.Sprites.Variations {
		if v.Name == "" {
			errs = append(errs, fmt.Errorf("sprites.variations[%d]: name cannot be empty", i))
		}
		if v.Output == "" {
			errs = append(errs, fmt.Errorf("sprites.variations[%d]: output cannot be empty", i))
		}
		if _, ok := outputs[v.Output]; ok {
			errs = append(errs, fmt.Errorf("sprites.variations[%d]: duplicate output %q", i, v.Output))
		}
		outputs[v.Output] = struct{}{}

		for j, r := range v.Rules {
			if err := r.From.validate(); err != nil {
				errs = append(errs, fmt.Errorf("sprites.variations[%d].rules[%d].from: %w", i, j, err))
			}
			if err := r.To.validate(); err != nil {
				errs = append(errs, fmt.Errorf("sprites.variations[%d].rules[%d].to: %w", i, j, err))
			}
		}
	}

	return errors.Join(errs...)
}

func (c Color) validate() error {
	if len(c) != 3 {
		return fmt.Errorf("expected 3 channels, got %d", len(c))
	}
	for _, v := range c {
		if v < 0 || v > 255 {
			return fmt.Errorf("channel value %d out of range 0-255", v)
		}
	}
	return nil
}

// rgb assumes the color has been validated.
func (c Color) rgb() recolor.RGB {
	return recolor.RGB{R: uint8(c[0]), G: uint8(c[1]), B: uint8(c[2])}
}

// Tracks converts the audio section for placeholder.Generate.
func (m *Manifest) Tracks() []placeholder.Track {
	tracks := make([]placeholder.Track, 0, len(m.Audio.Tracks))
	for _, t := range m.Audio.Tracks {
		tracks = append(tracks, placeholder.Track{Filename: t.File, Seconds: t.Seconds})
	}
	return tracks
}

// Variations converts the sprite section for recolor.Generate, resolving
// relative output paths against dir.
func (m *Manifest) Variations(dir string) []recolor.Variation {
	variations := make([]recolor.Variation, 0, len(m.Sprites.Variations))
	for _, v := range m.Sprites.Variations {
		output := v.Output
		if !filepath.IsAbs(output) {
			output = filepath.Join(dir, output)
		}
		table := make(recolor.Table, 0, len(v.Rules))
		for _, r := range v.Rules {
			table = append(table, recolor.Rule{From: r.From.rgb(), To: r.To.rgb()})
		}
		variations = append(variations, recolor.Variation{Name: v.Name, Output: output, Rules: table})
	}
	return variations
}
