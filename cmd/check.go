package cmd

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/rubiojr/robo/ast"
	"github.com/rubiojr/robo/env"
	"github.com/rubiojr/robo/parser"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
	"modernc.org/scanner"
	"modernc.org/token"
)

func (a *app) checkAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() < 1 {
		return fmt.Errorf("usage: robo check [-j n] <file.prog>...")
	}
	paths := cmd.Args().Slice()
	problems, err := checkFiles(ctx, paths, int(cmd.Int("jobs")))
	if err != nil {
		return err
	}
	for _, p := range problems {
		fmt.Fprintf(a.errOut, "%s %v\n", a.colors.err.Sprint(position(p.Pos)+":"), p.Err)
	}
	if len(problems) > 0 {
		return fmt.Errorf("%d problem(s) in %d file(s)", len(problems), len(paths))
	}
	fmt.Fprintf(a.out, "%s %d file(s)\n", a.colors.ok.Sprint("ok:"), len(paths))
	return nil
}

// checkFiles parses and checks paths with at most jobs files in flight.
// Problems are sorted by file and line; the error is only set when ctx is
// done.
func checkFiles(ctx context.Context, paths []string, jobs int) (scanner.ErrList, error) {
	if jobs < 1 {
		jobs = 1
	}
	results := make([]*scanner.ErrWithPosition, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = checkFile(path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var problems scanner.ErrList
	for _, r := range results {
		if r != nil {
			problems = append(problems, *r)
		}
	}
	sort.SliceStable(problems, func(i, j int) bool {
		pi, pj := problems[i].Pos, problems[j].Pos
		if pi.Filename != pj.Filename {
			return pi.Filename < pj.Filename
		}
		return pi.Line < pj.Line
	})
	return problems, nil
}

func checkFile(path string) *scanner.ErrWithPosition {
	prog, err := parser.ParseFile(path, env.New())
	if err != nil {
		var se *parser.SyntaxError
		if errors.As(err, &se) {
			return &scanner.ErrWithPosition{Pos: se.Pos, Err: errors.New(se.Msg)}
		}
		return &scanner.ErrWithPosition{Pos: token.Position{Filename: path}, Err: err}
	}
	if err := ast.DefaultChecks().Run(prog); err != nil {
		pos := token.Position{Filename: path}
		var ce *ast.CheckError
		if errors.As(err, &ce) {
			pos.Line = ce.Line
			err = errors.New(ce.Msg)
		}
		return &scanner.ErrWithPosition{Pos: pos, Err: err}
	}
	return nil
}

func position(p token.Position) string {
	switch {
	case p.Line > 0 && p.Column > 0:
		return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
	case p.Line > 0:
		return fmt.Sprintf("%s:%d", p.Filename, p.Line)
	}
	return p.Filename
}
