package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"
	"github.com/rubiojr/robo/doc"
	"github.com/rubiojr/robo/env"
	"github.com/rubiojr/robo/interp"
	"github.com/rubiojr/robo/parser"
	"github.com/rubiojr/robo/robot"
	"github.com/urfave/cli/v3"
)

const replHelp = `Enter statements, e.g. move(2); or if (lt(fuelLeft, 10)) { takeFuel; }
  :status  show the robot
  :vars    list variables
  :quit    leave
`

// session is one interactive run. Variables and the robot persist across
// lines.
type session struct {
	out   io.Writer
	vars  *env.Environment
	sim   *robot.Sim
	in    *interp.Interpreter
	lines int
}

func newSession(out io.Writer, w robot.World) *session {
	vars := env.New()
	sim := robot.New(w)
	return &session{out: out, vars: vars, sim: sim, in: interp.New(sim, vars)}
}

// eval runs one line of input and reports whether the session is over.
func (s *session) eval(ctx context.Context, line string) (bool, error) {
	line = strings.TrimSpace(line)
	switch line {
	case "":
		return false, nil
	case ":quit", ":q":
		return true, nil
	case ":help":
		fmt.Fprint(s.out, replHelp)
		return false, nil
	case ":status":
		fmt.Fprintln(s.out, s.sim.Status())
		return false, nil
	case ":vars":
		for _, name := range s.vars.Names() {
			v, _ := s.vars.Lookup(name)
			fmt.Fprintf(s.out, "%s = %d\n", name, v)
		}
		return false, nil
	}

	s.lines++
	prog, err := parser.ParseSource(fmt.Sprintf("<repl:%d>", s.lines), line, s.vars)
	if err != nil {
		return false, err
	}
	if err := s.in.Run(ctx, prog); err != nil {
		if interp.IsCancelled(err) {
			fmt.Fprintln(s.out, s.sim.Status())
			return true, nil
		}
		return false, err
	}
	if s.sim.IsDead() {
		fmt.Fprintln(s.out, s.sim.Status())
		return true, nil
	}
	return false, nil
}

func (a *app) replAction(ctx context.Context, cmd *cli.Command) error {
	world, err := loadWorld(cmd.String("world"))
	if err != nil {
		return err
	}
	s := newSession(a.out, world)

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)
	line.SetCompleter(complete)

	fmt.Fprintln(a.out, "robo repl, :help for commands")
	for {
		input, err := line.Prompt("robo> ")
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if strings.TrimSpace(input) != "" {
			line.AppendHistory(input)
		}
		done, err := s.eval(ctx, input)
		if err != nil {
			fmt.Fprintf(a.errOut, "%s %v\n", a.colors.err.Sprint("error:"), err)
			continue
		}
		if done {
			return nil
		}
	}
}

// complete offers language names matching the word under the cursor.
func complete(line string) []string {
	start := strings.LastIndexAny(line, " ({,;") + 1
	prefix, word := line[:start], line[start:]
	if word == "" {
		return nil
	}
	var out []string
	for _, name := range doc.Names() {
		if strings.HasPrefix(name, word) && name != word {
			out = append(out, prefix+name)
		}
	}
	return out
}
