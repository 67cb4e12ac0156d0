package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
	"github.com/rubiojr/robo/ast"
	"github.com/rubiojr/robo/doc"
	"github.com/rubiojr/robo/env"
	"github.com/rubiojr/robo/parser"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

// Execute runs the robo CLI with the given version string.
func Execute(version string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a := newApp(os.Stdout, os.Stderr)
	if err := a.command(version).Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", a.colors.err.Sprint("error:"), err)
		stop()
		os.Exit(1)
	}
}

// app carries the output streams shared by every command.
type app struct {
	out    io.Writer
	errOut io.Writer
	colors palette
}

type palette struct {
	err  *color.Color
	ok   *color.Color
	note *color.Color
}

func newApp(out, errOut io.Writer) *app {
	return &app{out: out, errOut: errOut, colors: newPalette(useColor(errOut))}
}

func newPalette(enabled bool) palette {
	p := palette{
		err:  color.New(color.FgRed, color.Bold),
		ok:   color.New(color.FgGreen),
		note: color.New(color.FgYellow),
	}
	for _, c := range []*color.Color{p.err, p.ok, p.note} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// useColor reports whether w is an interactive terminal and NO_COLOR is unset.
func useColor(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (a *app) command(version string) *cli.Command {
	return &cli.Command{
		Name:                   "robo",
		Usage:                  "Parse and run robot control programs",
		Version:                version,
		UseShortOptionHandling: true,
		Writer:                 a.out,
		ErrWriter:              a.errOut,
		Commands: []*cli.Command{
			{
				Name:      "run",
				Usage:     "Run a program against a simulated robot",
				ArgsUsage: "<file.prog>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "world",
						Aliases: []string{"w"},
						Usage:   "World file (.yaml, .yml or .toml)",
					},
					&cli.BoolFlag{
						Name:    "trace",
						Aliases: []string{"t"},
						Usage:   "Print every robot call",
					},
					&cli.IntFlag{
						Name:  "max-steps",
						Usage: "Abort after this many steps (0 means no limit)",
					},
				},
				Action: a.runAction,
			},
			{
				Name:      "parse",
				Usage:     "Parse a program and print it in canonical form",
				ArgsUsage: "<file.prog>",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "dump",
						Aliases: []string{"d"},
						Usage:   "Dump the raw syntax tree",
					},
				},
				Action: a.parseAction,
			},
			{
				Name:      "check",
				Usage:     "Parse programs and run static checks",
				ArgsUsage: "<file.prog>...",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "jobs",
						Aliases: []string{"j"},
						Usage:   "Files checked in parallel",
						Value:   4,
					},
				},
				Action: a.checkAction,
			},
			{
				Name:      "fmt",
				Usage:     "Print a program formatted",
				ArgsUsage: "<file.prog>",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "write",
						Aliases: []string{"w"},
						Usage:   "Write the result back to the file",
					},
					&cli.BoolFlag{
						Name:    "simplify",
						Aliases: []string{"s"},
						Usage:   "Fold constant arithmetic and double negations",
					},
				},
				Action: a.fmtAction,
			},
			{
				Name:      "doc",
				Usage:     "Show the language reference",
				ArgsUsage: "[name]",
				Action:    a.docAction,
			},
			{
				Name:  "repl",
				Usage: "Run statements interactively",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "world",
						Aliases: []string{"w"},
						Usage:   "World file (.yaml, .yml or .toml)",
					},
				},
				Action: a.replAction,
			},
		},
	}
}

func (a *app) parseAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() < 1 {
		return fmt.Errorf("usage: robo parse [--dump] <file.prog>")
	}
	prog, err := parser.ParseFile(cmd.Args().First(), env.New())
	if err != nil {
		return err
	}
	if cmd.Bool("dump") {
		cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableCapacities: true}
		cfg.Fdump(a.out, prog)
		return nil
	}
	fmt.Fprint(a.out, ast.Format(prog))
	return nil
}

func (a *app) fmtAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() < 1 {
		return fmt.Errorf("usage: robo fmt [-w] [-s] <file.prog>")
	}
	path := cmd.Args().First()
	prog, err := parser.ParseFile(path, env.New())
	if err != nil {
		return err
	}
	if cmd.Bool("simplify") {
		prog = ast.Simplify().Transform(prog)
	}
	src := ast.Format(prog)
	if !cmd.Bool("write") {
		fmt.Fprint(a.out, src)
		return nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(src), info.Mode().Perm()); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func (a *app) docAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() == 0 {
		doc.FormatAll(a.out)
		return nil
	}
	name := cmd.Args().First()
	e, ok := doc.Lookup(name)
	if !ok {
		return fmt.Errorf("no documentation for %q", name)
	}
	fmt.Fprint(a.out, doc.FormatEntry(e))
	return nil
}
