package robot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadWorldYAML(t *testing.T) {
	path := writeFile(t, "arena.yaml", `
width: 8
height: 4
fuel: 30
start: {x: 2, y: 1}
heading: E
opponent: {x: 7, y: 3}
barrels:
  - {x: 4, y: 1}
`)
	w, err := LoadWorld(path)
	require.NoError(t, err)
	assert.Equal(t, 8, w.Width)
	assert.Equal(t, 4, w.Height)
	assert.Equal(t, 30, w.Fuel)
	assert.Equal(t, "E", w.Heading)
	assert.Equal(t, Point{X: 2, Y: 1}, w.Start)
	assert.Equal(t, []Point{{X: 4, Y: 1}}, w.Barrels)
	assert.Equal(t, DefaultWorld().MaxTurns, w.MaxTurns, "unset fields keep their defaults")
}

func TestLoadWorldTOML(t *testing.T) {
	path := writeFile(t, "arena.toml", `
width = 5
height = 5
max_turns = 40
barrel_fuel = 7
heading = "W"

[start]
x = 4
y = 0

[opponent]
x = 0
y = 4

[[barrels]]
x = 2
y = 2
`)
	w, err := LoadWorld(path)
	require.NoError(t, err)
	assert.Equal(t, 5, w.Width)
	assert.Equal(t, 40, w.MaxTurns)
	assert.Equal(t, 7, w.BarrelFuel)
	assert.Equal(t, "W", w.Heading)
	assert.Equal(t, Point{X: 4, Y: 0}, w.Start)
	assert.Equal(t, []Point{{X: 2, Y: 2}}, w.Barrels)
}

func TestLoadWorldEmptyYAML(t *testing.T) {
	w, err := LoadWorld(writeFile(t, "empty.yml", ""))
	require.NoError(t, err)
	assert.Equal(t, DefaultWorld(), w)
}

func TestLoadWorldUnknownField(t *testing.T) {
	_, err := LoadWorld(writeFile(t, "bad.yaml", "widht: 3\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "widht")

	_, err = LoadWorld(writeFile(t, "bad.toml", "widht = 3\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown field "widht"`)
}

func TestLoadWorldUnsupportedExtension(t *testing.T) {
	_, err := LoadWorld(writeFile(t, "arena.json", "{}"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestLoadWorldMissing(t *testing.T) {
	_, err := LoadWorld(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadWorldValidation(t *testing.T) {
	path := writeFile(t, "broken.yaml", `
width: 3
height: 3
fuel: 0
heading: up
start: {x: 5, y: 0}
`)
	_, err := LoadWorld(path)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, path, ve.Path)
	assert.Equal(t, []string{
		"fuel must be positive",
		`heading "up" must be one of N, E, S, W`,
		"start (5,0) is outside the arena",
		"opponent (10,10) is outside the arena",
		"barrels[0] (1,6) is outside the arena",
		"barrels[1] (6,6) is outside the arena",
		"barrels[2] (9,2) is outside the arena",
	}, ve.Issues)
}
