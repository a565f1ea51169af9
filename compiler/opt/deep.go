package opt

import (
	"context"

	"nikand.dev/go/heap"
	"tlog.app/go/loc"
	"tlog.app/go/tlog"

	"github.com/zserik/lc1c/compiler/asm"
	"github.com/zserik/lc1c/compiler/set"
)

type (
	worklist struct {
		heap.Heap[int]
	}
)

// threadJumps retargets jumps to a label that is followed by JMP y directly to y.
func threadJumps(ctx context.Context, p []asm.Statement, dead *set.Bits[int]) (n int) {
	tr := tlog.SpanFromContext(ctx)

	ls := collectLabels(p)

	for i := range p {
		st := &p[i]

		if !st.Optimizable || !isJump(st.Invoc.Op) || st.Invoc.Arg.Kind != asm.Label {
			continue
		}

		to, ok := ls.follow(p, st.Invoc.Arg.Name)
		if !ok || to == st.Invoc.Arg.Name {
			continue
		}

		ref := st.Invoc.ArgRef()
		old := ref.Take()
		*ref = asm.Ref(to)

		n++

		tr.V("opt").Printw("thread jump", "i", i, "old", old, "st", st.Invoc, "from", loc.Caller(1))
	}

	return n
}

// follow walks the chain of labels followed by unconditional jumps.
// It fails if the chain is a cycle.
func (ls labels) follow(p []asm.Statement, name string) (string, bool) {
	visited := map[string]struct{}{name: {}}

	for {
		next := ls.jumpsTo(p, name)
		if next == "" {
			return name, true
		}

		if _, ok := visited[next]; ok {
			return "", false
		}

		visited[next] = struct{}{}
		name = next
	}
}

// jumpsTo returns the label an uniquely defined label jumps to right away.
func (ls labels) jumpsTo(p []asm.Statement, name string) string {
	defs := ls[name]
	if len(defs) != 1 {
		return ""
	}

	for j := defs[0] + 1; j < len(p); j++ {
		switch x := p[j].Invoc; x.Op {
		case asm.NOP, asm.LABEL:
		case asm.JMP:
			if x.Arg.Kind == asm.Label {
				return x.Arg.Name
			}

			return ""
		default:
			return ""
		}
	}

	return ""
}

// markUnreachable deletes statements not reachable from the first one.
// It gives up if any jump target is not a known label.
func markUnreachable(ctx context.Context, p []asm.Statement, dead *set.Bits[int]) int {
	if len(p) == 0 {
		return 0
	}

	ls := collectLabels(p)

	for _, st := range p {
		if !isJump(st.Invoc.Op) {
			continue
		}

		if st.Invoc.Arg.Kind != asm.Label || len(ls[st.Invoc.Arg.Name]) == 0 {
			tlog.SpanFromContext(ctx).V("opt").Printw("unreachable: unknown jump target", "st", st.Invoc)

			return 0
		}
	}

	reach := set.MakeBits[int](len(p))

	w := worklist{Heap: heap.Heap[int]{Less: worklistLess}}
	w.Push(0)

	for w.Len() != 0 {
		i := w.Pop()

		if reach.IsSet(i) {
			continue
		}

		reach.Set(i)

		x := p[i].Invoc

		if isJump(x.Op) {
			for _, j := range ls[x.Arg.Name] {
				w.Push(j)
			}
		}

		if !terminates(x.Op) && i+1 < len(p) {
			w.Push(i + 1)
		}
	}

	for i, st := range p {
		if st.Optimizable && !reach.IsSet(i) {
			dead.Set(i)
		}
	}

	return 0
}

// markUnusedLabels deletes label definitions no argument refers to.
func markUnusedLabels(ctx context.Context, p []asm.Statement, dead *set.Bits[int]) int {
	used := map[string]struct{}{}

	for _, st := range p {
		if a := st.Invoc.ArgRef(); a != nil && a.Kind == asm.Label {
			used[a.Name] = struct{}{}
		}
	}

	for i, st := range p {
		if st.Invoc.Op != asm.LABEL {
			continue
		}

		if _, ok := used[st.Invoc.Label]; !ok {
			dead.Set(i)
		}
	}

	return 0
}

func worklistLess(d []int, i, j int) bool {
	return d[i] < d[j]
}
