package opt

import (
	"context"

	"tlog.app/go/tlog"

	"github.com/zserik/lc1c/compiler/asm"
	"github.com/zserik/lc1c/compiler/set"
)

type (
	pass struct {
		name string

		// mark sets indexes of statements to delete
		// and returns the number of statements rewritten in place.
		mark func(ctx context.Context, p []asm.Statement, dead *set.Bits[int]) int
	}

	labels map[string][]int
)

const maxRounds = 64

var (
	normalPasses = []pass{
		{"nop", markNops},
		{"dead_code", markDeadCode},
		{"jump_next", markJumpNext},
	}

	deepPasses = append(normalPasses[:len(normalPasses):len(normalPasses)],
		pass{"thread_jumps", threadJumps},
		pass{"unreachable", markUnreachable},
		pass{"unused_labels", markUnusedLabels},
	)
)

// Optimize returns the optimized program.
// Only statements marked Optimizable are deleted or rewritten,
// except unused label definitions which are deleted at Deep level.
// prog itself is not modified.
func Optimize(ctx context.Context, lvl Level, prog []asm.Statement) []asm.Statement {
	if lvl == None || len(prog) == 0 {
		return prog
	}

	tr := tlog.SpanFromContext(ctx).V("opt")

	p := append([]asm.Statement(nil), prog...)

	passes := normalPasses
	if lvl == Deep {
		passes = deepPasses
	}

	for round := 0; round < maxRounds; round++ {
		changed := 0

		for _, ps := range passes {
			if len(p) == 0 {
				break
			}

			var n int

			p, n = ps.apply(ctx, p)
			changed += n
		}

		tr.Printw("round", "round", round, "level", lvl.String(), "changed", changed, "statements", len(p))

		if changed == 0 || lvl != Deep || len(p) == 0 {
			break
		}
	}

	return p
}

func (ps pass) apply(ctx context.Context, p []asm.Statement) ([]asm.Statement, int) {
	dead := set.MakeBits[int](len(p))

	n := ps.mark(ctx, p, &dead)

	if dead.Size() == 0 {
		return p, n
	}

	tr := tlog.SpanFromContext(ctx)

	tr.V("opt").Printw("pass", "pass", ps.name, "dead", dead)

	out := p[:0]

	for i := range p {
		if !dead.IsSet(i) {
			out = append(out, p[i])
			continue
		}

		x := p[i].Invoc.Take()
		n++

		tr.V("opt").Printw("delete", "pass", ps.name, "i", i, "st", x)
	}

	return out, n
}

func markNops(ctx context.Context, p []asm.Statement, dead *set.Bits[int]) int {
	for i, st := range p {
		if st.Optimizable && st.Invoc.Op == asm.NOP {
			dead.Set(i)
		}
	}

	return 0
}

// markDeadCode deletes what follows an unconditional
// control transfer up to the next statement we must keep.
func markDeadCode(ctx context.Context, p []asm.Statement, dead *set.Bits[int]) int {
	skip := false

	for i, st := range p {
		if skip && st.Optimizable {
			dead.Set(i)
			continue
		}

		skip = terminates(st.Invoc.Op)
	}

	return 0
}

// markJumpNext deletes JMP x when x: is the next thing executed anyway.
func markJumpNext(ctx context.Context, p []asm.Statement, dead *set.Bits[int]) int {
	for i, st := range p {
		if !st.Optimizable || st.Invoc.Op != asm.JMP || st.Invoc.Arg.Kind != asm.Label {
			continue
		}

	next:
		for j := i + 1; j < len(p); j++ {
			switch x := p[j].Invoc; x.Op {
			case asm.NOP:
			case asm.LABEL:
				if x.Label == st.Invoc.Arg.Name {
					dead.Set(i)
					break next
				}
			default:
				break next
			}
		}
	}

	return 0
}

func terminates(op asm.Op) bool {
	return op == asm.HLT || op == asm.RET || op == asm.JMP
}

func isJump(op asm.Op) bool {
	return op == asm.JMP || op == asm.JPS || op == asm.JPO || op == asm.CAL
}

func collectLabels(p []asm.Statement) labels {
	l := labels{}

	for i, st := range p {
		if st.Invoc.Op == asm.LABEL {
			l[st.Invoc.Label] = append(l[st.Invoc.Label], i)
		}
	}

	return l
}
