package robot

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Point is a grid cell. X grows to the east, Y to the north.
type Point struct {
	X int `yaml:"x" toml:"x"`
	Y int `yaml:"y" toml:"y"`
}

// World describes the arena a simulated robot starts in.
type World struct {
	Width      int     `yaml:"width" toml:"width"`
	Height     int     `yaml:"height" toml:"height"`
	MaxTurns   int     `yaml:"max_turns" toml:"max_turns"`
	Fuel       int     `yaml:"fuel" toml:"fuel"`
	BarrelFuel int     `yaml:"barrel_fuel" toml:"barrel_fuel"`
	Start      Point   `yaml:"start" toml:"start"`
	Heading    string  `yaml:"heading" toml:"heading"`
	Opponent   Point   `yaml:"opponent" toml:"opponent"`
	Barrels    []Point `yaml:"barrels" toml:"barrels"`
}

// ValidationError lists every problem found in a world description.
type ValidationError struct {
	Path   string
	Issues []string
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString("world: invalid")
	if e.Path != "" {
		b.WriteString(" ")
		b.WriteString(e.Path)
	}
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

// DefaultWorld returns the arena used when no world file is given.
func DefaultWorld() World {
	return World{
		Width:      12,
		Height:     12,
		MaxTurns:   200,
		Fuel:       50,
		BarrelFuel: 20,
		Start:      Point{X: 1, Y: 1},
		Heading:    "N",
		Opponent:   Point{X: 10, Y: 10},
		Barrels:    []Point{{X: 1, Y: 6}, {X: 6, Y: 6}, {X: 9, Y: 2}},
	}
}

// LoadWorld reads a world file. The format follows the extension: .yaml
// or .yml for YAML, .toml for TOML. Fields missing from the file keep
// their DefaultWorld values; unknown fields are rejected.
func LoadWorld(path string) (World, error) {
	w := DefaultWorld()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		f, err := os.Open(path)
		if err != nil {
			return World{}, fmt.Errorf("world: open %s: %w", path, err)
		}
		defer f.Close()
		dec := yaml.NewDecoder(f)
		dec.KnownFields(true)
		if err := dec.Decode(&w); err != nil && !errors.Is(err, io.EOF) {
			return World{}, fmt.Errorf("world: parse %s: %w", path, err)
		}
	case ".toml":
		md, err := toml.DecodeFile(path, &w)
		if err != nil {
			return World{}, fmt.Errorf("world: parse %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return World{}, fmt.Errorf("world: parse %s: unknown field %q", path, undecoded[0].String())
		}
	default:
		return World{}, fmt.Errorf("world: %s: unsupported format (want .yaml, .yml or .toml)", path)
	}
	if err := w.Validate(); err != nil {
		var ve *ValidationError
		if errors.As(err, &ve) {
			ve.Path = path
		}
		return World{}, err
	}
	return w, nil
}

// Validate reports every inconsistency in w.
func (w World) Validate() error {
	var errs ValidationError
	if w.Width <= 0 || w.Height <= 0 {
		errs.Issues = append(errs.Issues, fmt.Sprintf("size %dx%d must be positive", w.Width, w.Height))
	}
	if w.Fuel <= 0 {
		errs.Issues = append(errs.Issues, "fuel must be positive")
	}
	if w.MaxTurns < 0 {
		errs.Issues = append(errs.Issues, "max_turns must not be negative")
	}
	if w.BarrelFuel < 0 {
		errs.Issues = append(errs.Issues, "barrel_fuel must not be negative")
	}
	if _, ok := parseHeading(w.Heading); !ok {
		errs.Issues = append(errs.Issues, fmt.Sprintf("heading %q must be one of N, E, S, W", w.Heading))
	}
	if !w.inside(w.Start) {
		errs.Issues = append(errs.Issues, fmt.Sprintf("start (%d,%d) is outside the arena", w.Start.X, w.Start.Y))
	}
	if !w.inside(w.Opponent) {
		errs.Issues = append(errs.Issues, fmt.Sprintf("opponent (%d,%d) is outside the arena", w.Opponent.X, w.Opponent.Y))
	}
	for i, b := range w.Barrels {
		if !w.inside(b) {
			errs.Issues = append(errs.Issues, fmt.Sprintf("barrels[%d] (%d,%d) is outside the arena", i, b.X, b.Y))
		}
	}
	if len(errs.Issues) > 0 {
		return &errs
	}
	return nil
}

func (w World) inside(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < w.Width && p.Y < w.Height
}
