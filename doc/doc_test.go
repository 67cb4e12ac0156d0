package doc

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rubiojr/robo/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEveryNameDocumented(t *testing.T) {
	var all []string
	all = append(all, ast.ActionNames()...)
	all = append(all, ast.SensorNames()...)
	all = append(all, ast.RelOpNames()...)
	all = append(all, ast.ArithOpNames()...)
	all = append(all, ast.Keywords...)

	for _, name := range all {
		e, ok := Lookup(name)
		require.True(t, ok, name)
		assert.NotEmpty(t, e.Doc, "%s has no description", name)
		assert.NotEmpty(t, e.Signature, name)
	}
	assert.Len(t, Entries(), len(all)+1)
}

func TestNoOrphanDocs(t *testing.T) {
	names := map[string]bool{}
	for _, n := range Names() {
		names[n] = true
	}
	for n := range docs {
		assert.True(t, names[n], "%s is documented but not a language element", n)
	}
}

func TestSignatures(t *testing.T) {
	tests := map[string]string{
		"move":     "move(n)",
		"turnL":    "turnL",
		"wallDist": "wallDist",
		"lt":       "lt(a, b)",
		"div":      "div(a, b)",
		"while":    "while (cond) { ... }",
	}
	for name, want := range tests {
		e, ok := Lookup(name)
		require.True(t, ok, name)
		assert.Equal(t, want, e.Signature, name)
	}
}

func TestLookupVariable(t *testing.T) {
	e, ok := Lookup("$speed")
	require.True(t, ok)
	assert.Equal(t, KindVariable, e.Kind)

	_, ok = Lookup("jump")
	assert.False(t, ok)
	_, ok = Lookup("$")
	assert.False(t, ok)
}

func TestFormatEntry(t *testing.T) {
	e, _ := Lookup("turnAround")
	assert.Equal(t, "turnAround  (action)\n    Turn 180 degrees.\n", FormatEntry(e))
}

func TestFormatAll(t *testing.T) {
	var buf bytes.Buffer
	FormatAll(&buf)
	out := buf.String()

	assert.Contains(t, out, "KIND")
	assert.Contains(t, out, "DESCRIPTION")
	for _, n := range []string{"move(n)", "fuelLeft", "eq(a, b)", "not(c)", "$name = n;"} {
		assert.Contains(t, out, n)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	// Borders, header and one row per entry.
	assert.Equal(t, len(Entries())+4, len(lines))
}
