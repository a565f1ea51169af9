package main

import (
	"context"
	"fmt"
	"os"

	"nikand.dev/go/cli"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/zserik/lc1c/compiler"
	"github.com/zserik/lc1c/compiler/opt"
)

func main() {
	parseCmd := &cli.Command{
		Name:        "parse",
		Description: "parse source files and print statements",
		Action:      parseAct,
		Args:        cli.Args{},
	}

	app := &cli.Command{
		Name:        "lc1c",
		Description: "high-level LC1 asm compiler",
		Action:      compileAct,
		Args:        cli.Args{},
		Flags: []*cli.Flag{
			cli.NewFlag("output,o", "", "specify a compilation output filename"),
			cli.NewFlag("unix2dos,U", false, "unix2dos mode -- insert carriage returns after each compiled line"),
			cli.NewFlag("verbose,v", false, "be more verbose"),
			cli.NewFlag("debug", "", "comma separated debug topics to log (opt, source)"),
			cli.NewFlag("optimize,O", "0", "sets the optimization level; 0 = no optimization; 1 = normal optimization; D = deep optimization"),
			cli.HelpFlag,
		},
		Commands: []*cli.Command{
			parseCmd,
		},
	}

	cli.RunAndExit(app, os.Args, os.Environ())
}

func options(c *cli.Command) (o compiler.Options, err error) {
	o.Level, err = opt.ParseLevel(c.String("optimize"))
	if err != nil {
		return o, errors.Wrap(err, "flag optimize")
	}

	o.Unix2Dos = c.Bool("unix2dos")
	o.Verbose = c.Bool("verbose")

	if v := c.String("debug"); v != "" {
		tlog.DefaultLogger.SetVerbosity(v)
	}

	return o, nil
}

func compileAct(c *cli.Command) (err error) {
	ctx := context.Background()
	ctx = tlog.ContextWithSpan(ctx, tlog.Root())

	o, err := options(c)
	if err != nil {
		return err
	}

	obj, err := compiler.CompileFiles(ctx, o, c.Args...)
	if err != nil {
		return errors.Wrap(err, "compile")
	}

	out := c.String("output")

	if out == "" || out == "-" {
		_, err = os.Stdout.Write(obj)
		return err
	}

	err = os.WriteFile(out, obj, 0o644)
	if err != nil {
		return errors.Wrap(err, "write output")
	}

	if o.Verbose {
		tlog.Printw("output written", "name", out, "size", len(obj))
	}

	return nil
}

func parseAct(c *cli.Command) (err error) {
	ctx := context.Background()
	ctx = tlog.ContextWithSpan(ctx, tlog.Root())

	o, err := options(c)
	if err != nil {
		return err
	}

	prog, err := compiler.ParseFiles(ctx, o, c.Args...)
	if err != nil {
		return errors.Wrap(err, "parse")
	}

	for _, st := range prog {
		kind := "pseudo"
		if st.Invoc.IsReal() {
			kind = "real"
		}

		if a := st.Invoc.ArgRef(); a != nil {
			_, name := a.Type()
			kind += " " + name
		}

		fmt.Printf("%s\t%-12v\t%s\n", st.Line.Pos(), st.Invoc, kind)
	}

	return nil
}
