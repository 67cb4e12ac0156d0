package cmd

import (
	"context"
	"fmt"

	"github.com/rubiojr/robo/env"
	"github.com/rubiojr/robo/interp"
	"github.com/rubiojr/robo/parser"
	"github.com/rubiojr/robo/robot"
	"github.com/urfave/cli/v3"
)

func (a *app) runAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() < 1 {
		return fmt.Errorf("usage: robo run [--world file] [--trace] [--max-steps n] <file.prog>")
	}
	world, err := loadWorld(cmd.String("world"))
	if err != nil {
		return err
	}
	vars := env.New()
	prog, err := parser.ParseFile(cmd.Args().First(), vars)
	if err != nil {
		return err
	}

	sim := robot.New(world)
	opts := []interp.Option{interp.WithMaxSteps(int(cmd.Int("max-steps")))}
	if cmd.Bool("trace") {
		opts = append(opts, interp.WithTrace(a.out))
	}
	in := interp.New(sim, vars, opts...)

	err = in.Run(ctx, prog)
	switch {
	case err == nil:
		fmt.Fprintf(a.out, "%s %s after %d steps\n", a.colors.ok.Sprint("finished:"), sim.Status(), in.Steps())
	case interp.IsCancelled(err):
		fmt.Fprintf(a.out, "%s %s after %d steps\n", a.colors.note.Sprint("stopped:"), sim.Status(), in.Steps())
	default:
		return err
	}
	return nil
}

func loadWorld(path string) (robot.World, error) {
	if path == "" {
		return robot.DefaultWorld(), nil
	}
	return robot.LoadWorld(path)
}
