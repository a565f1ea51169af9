package compiler

import (
	"context"

	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/zserik/lc1c/compiler/asm"
	"github.com/zserik/lc1c/compiler/opt"
	"github.com/zserik/lc1c/compiler/source"
)

type (
	Options struct {
		Unix2Dos bool // end output lines with "\r\n"
		Verbose  bool
		Level    opt.Level
	}

	Stmt struct {
		Line source.Line
		asm.Statement
	}
)

func CompileFiles(ctx context.Context, opts Options, names ...string) (obj []byte, err error) {
	s, err := readFiles(ctx, names, opts)
	if err != nil {
		return nil, err
	}

	return compile(ctx, s, opts)
}

func Compile(ctx context.Context, name string, text []byte, opts Options) (obj []byte, err error) {
	s := source.New()

	s.AddFile(name, text)

	return compile(ctx, s, opts)
}

func ParseFiles(ctx context.Context, opts Options, names ...string) ([]Stmt, error) {
	s, err := readFiles(ctx, names, opts)
	if err != nil {
		return nil, err
	}

	return Parse(ctx, s, opts)
}

// Parse parses all non-blank lines.
// It does not stop at the first bad line, all of them are reported as LineErrors.
// Real instructions are marked optimizable, pseudo-ops are not.
func Parse(ctx context.Context, s *source.State, opts Options) (prog []Stmt, err error) {
	tr := tlog.SpanFromContext(ctx)

	var errs LineErrors

	for _, l := range s.Lines() {
		if l.Blank() {
			continue
		}

		x, err := asm.ParseInvoc(l.Text)
		if err != nil {
			errs = append(errs, LineError{
				File: l.File,
				Line: l.Num,
				Text: l.Text,
				Err:  err,
			})

			continue
		}

		if opts.Verbose {
			tr.Printw("statement", "pos", l.Pos(), "st", x, "real", x.IsReal())
		}

		prog = append(prog, Stmt{
			Line:      l,
			Statement: asm.NewStatement(x, x.IsReal()),
		})
	}

	if len(errs) != 0 {
		return nil, errs
	}

	return prog, nil
}

func compile(ctx context.Context, s *source.State, opts Options) (obj []byte, err error) {
	prog, err := Parse(ctx, s, opts)
	if err != nil {
		return nil, errors.Wrap(err, "parse")
	}

	sts := make([]asm.Statement, len(prog))

	for i, st := range prog {
		sts[i] = st.Statement
	}

	sts = opt.Optimize(ctx, opts.Level, sts)

	if opts.Verbose {
		tlog.SpanFromContext(ctx).Printw("optimized", "level", opts.Level.String(), "before", len(prog), "after", len(sts))
	}

	return Format(nil, sts, opts.Unix2Dos), nil
}

// Format appends one canonical line per statement.
func Format(b []byte, prog []asm.Statement, unix2dos bool) []byte {
	for _, st := range prog {
		b = st.Invoc.AppendTo(b)

		if unix2dos {
			b = append(b, '\r')
		}

		b = append(b, '\n')
	}

	return b
}

func readFiles(ctx context.Context, names []string, opts Options) (*source.State, error) {
	if len(names) == 0 {
		return nil, errors.New("no input files")
	}

	s := source.New()

	for _, name := range names {
		err := s.ReadFile(ctx, name)
		if err != nil {
			return nil, errors.Wrap(err, "%v", name)
		}

		if opts.Verbose {
			tlog.SpanFromContext(ctx).Printw("read file", "name", name)
		}
	}

	return s, nil
}
