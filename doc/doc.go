// Package doc holds the built-in language reference shown by `robo doc`.
//
// Every action, sensor, operator and keyword known to the parser has an
// entry; the entry list is derived from the ast name tables so the two
// cannot drift apart silently.
package doc

import (
	"github.com/rubiojr/robo/ast"
)

// Kind groups reference entries.
type Kind string

const (
	KindAction   Kind = "action"
	KindSensor   Kind = "sensor"
	KindRelOp    Kind = "condition"
	KindArithOp  Kind = "operator"
	KindKeyword  Kind = "keyword"
	KindVariable Kind = "variable"
)

// Entry documents one language element.
type Entry struct {
	Name      string
	Kind      Kind
	Signature string // e.g. "move(n)" or "add(a, b)"
	Doc       string
}

var docs = map[string]string{
	"move":       "Move forward n cells (1 when n is omitted). Negative n moves backwards.",
	"wait":       "Idle for n turns (1 when n is omitted). Non-positive n does nothing.",
	"turnL":      "Turn 90 degrees to the left.",
	"turnR":      "Turn 90 degrees to the right.",
	"takeFuel":   "Refuel from a barrel on the current cell.",
	"turnAround": "Turn 180 degrees.",
	"shieldOn":   "Raise the shield.",
	"shieldOff":  "Lower the shield.",

	"fuelLeft":   "Fuel remaining.",
	"oppLR":      "Opponent offset to the right (negative means left).",
	"oppFB":      "Opponent offset ahead (negative means behind).",
	"numBarrels": "Number of fuel barrels left in the world.",
	"barrelLR":   "Closest barrel offset to the right (negative means left).",
	"barrelFB":   "Closest barrel offset ahead (negative means behind).",
	"wallDist":   "Free cells between the robot and the wall ahead.",

	"lt": "True when a < b.",
	"gt": "True when a > b.",
	"eq": "True when a == b.",

	"add": "a + b.",
	"sub": "a - b.",
	"mul": "a * b.",
	"div": "a / b, truncated toward zero. Fails when b is 0.",

	"loop":  "Repeat the block until the robot dies.",
	"while": "Repeat the block while the condition holds.",
	"if":    "Run the block when the condition holds.",
	"elif":  "Tried in order when every earlier condition failed.",
	"else":  "Runs when no condition of the if chain held.",
	"and":   "True when both conditions hold. The right side is skipped when the left is false.",
	"or":    "True when either condition holds. The right side is skipped when the left is true.",
	"not":   "Negates a condition.",

	"$name": "A variable. Assign with $name = n; before reading it.",
}

var signatures = map[string]string{
	"move":  "move(n)",
	"wait":  "wait(n)",
	"loop":  "loop { ... }",
	"while": "while (cond) { ... }",
	"if":    "if (cond) { ... }",
	"elif":  "elif (cond) { ... }",
	"else":  "else { ... }",
	"and":   "and(c1, c2)",
	"or":    "or(c1, c2)",
	"not":   "not(c)",
	"$name": "$name = n;",
}

// Entries returns the full reference in display order.
func Entries() []Entry {
	var out []Entry
	add := func(kind Kind, names []string, sig func(string) string) {
		for _, n := range names {
			s, ok := signatures[n]
			if !ok {
				s = sig(n)
			}
			out = append(out, Entry{Name: n, Kind: kind, Signature: s, Doc: docs[n]})
		}
	}
	same := func(n string) string { return n }
	binary := func(n string) string { return n + "(a, b)" }

	add(KindAction, ast.ActionNames(), same)
	add(KindSensor, ast.SensorNames(), same)
	add(KindRelOp, ast.RelOpNames(), binary)
	add(KindArithOp, ast.ArithOpNames(), binary)
	add(KindKeyword, ast.Keywords, same)
	add(KindVariable, []string{"$name"}, same)
	return out
}

// Lookup finds the entry for name. Any variable name resolves to the
// generic variable entry.
func Lookup(name string) (Entry, bool) {
	if len(name) > 1 && name[0] == '$' {
		name = "$name"
	}
	for _, e := range Entries() {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// Names returns every documented name.
func Names() []string {
	entries := Entries()
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}
