package asm

import (
	"fmt"
	"strings"

	"github.com/nikandfor/hacked/hfmt"
	"tlog.app/go/tlog/tlwire"
)

type (
	Op uint8

	Command struct {
		Mnemonic string
		IsReal   bool
		HasArg   bool
	}

	// InvocOf is a statement invocation generic over its payload types:
	// A is the operand of LDA..RLA, D is the DEF payload and L is the label name.
	// Only the field selected by Op is meaningful.
	InvocOf[A, D, L any] struct {
		Op    Op
		Arg   A
		Def   D
		Label L
	}

	Invoc = InvocOf[Argument, uint16, string]

	Statement struct {
		Invoc       Invoc
		Optimizable bool
	}
)

// NOP is the zero Op, so the zero Invoc is a NOP.
const (
	NOP Op = iota
	LDA
	LDB
	MOV
	MAB
	ADD
	SUB
	AND
	NOT
	JMP
	JPS
	JPO
	CAL
	RET
	RRA
	RLA
	HLT
	DEF
	LABEL

	numOps
)

var commands = [numOps]Command{
	NOP: {"NOP", true, false},
	LDA: {"LDA", true, true},
	LDB: {"LDB", true, true},
	MOV: {"MOV", true, true},
	MAB: {"MAB", true, false},
	ADD: {"ADD", true, false},
	SUB: {"SUB", true, false},
	AND: {"AND", true, false},
	NOT: {"NOT", true, false},
	JMP: {"JMP", true, true},
	JPS: {"JPS", true, true},
	JPO: {"JPO", true, true},
	CAL: {"CAL", true, true},
	RET: {"RET", true, false},
	RRA: {"RRA", true, true},
	RLA: {"RLA", true, true},
	HLT: {"HLT", true, false},

	DEF:   {"DEF", false, true},
	LABEL: {"Label", false, true},
}

// mnemonics maps upper-case mnemonic text to Op.
// Label definitions have no mnemonic and are not in here.
var mnemonics = func() map[string]Op {
	m := make(map[string]Op, numOps)

	for op := NOP; op < LABEL; op++ {
		m[commands[op].Mnemonic] = op
	}

	return m
}()

// LookupOp recognizes a mnemonic case-insensitively.
func LookupOp(mnemonic string) (Op, bool) {
	op, ok := mnemonics[strings.ToUpper(mnemonic)]

	return op, ok
}

func Ops() []Op {
	l := make([]Op, numOps)

	for i := range l {
		l[i] = Op(i)
	}

	return l
}

func (op Op) Cmd() Command {
	if op >= numOps {
		return Command{Mnemonic: fmt.Sprintf("Op(%d)", uint8(op))}
	}

	return commands[op]
}

func (op Op) String() string {
	return op.Cmd().Mnemonic
}

// Operand reports whether op carries a generic operand slot (Arg).
// DEF and label definitions have their own payload slots.
func (op Op) Operand() bool {
	return op.Cmd().HasArg && op != DEF && op != LABEL
}

// MapInvoc converts an invocation to another payload representation.
// Exactly one of the functions is called, the one matching the shape of x.Op:
// arg for operand instructions, def for DEF, label for label definitions
// and none for instructions without argument.
func MapInvoc[A, D, L, A2, D2, L2 any](x InvocOf[A, D, L],
	arg func(A) (A2, error),
	def func(D) (D2, error),
	label func(L) (L2, error),
	none func() error,
) (y InvocOf[A2, D2, L2], err error) {
	y.Op = x.Op

	switch {
	case x.Op == DEF:
		y.Def, err = def(x.Def)
	case x.Op == LABEL:
		y.Label, err = label(x.Label)
	case x.Op.Operand():
		y.Arg, err = arg(x.Arg)
	default:
		err = none()
	}

	if err != nil {
		return InvocOf[A2, D2, L2]{}, err
	}

	return y, nil
}

// Plain makes an instruction without argument.
func Plain(op Op) Invoc {
	return Invoc{Op: op}
}

// WithArg makes an operand instruction. op must be one with Operand() == true.
// For any other op arg is stored but ignored by rendering, ArgRef and MapInvoc,
// so the result does not survive a String/ParseInvoc round trip.
func WithArg(op Op, arg Argument) Invoc {
	return Invoc{Op: op, Arg: arg}
}

func Def(v uint16) Invoc {
	return Invoc{Op: DEF, Def: v}
}

func LabelDef(name string) Invoc {
	return Invoc{Op: LABEL, Label: name}
}

func NewStatement(x Invoc, optimizable bool) Statement {
	return Statement{
		Invoc:       x,
		Optimizable: optimizable,
	}
}

func (x InvocOf[A, D, L]) Cmd() Command { return x.Op.Cmd() }

func (x InvocOf[A, D, L]) Mnemonic() string { return x.Op.Cmd().Mnemonic }

func (x InvocOf[A, D, L]) IsReal() bool { return x.Op.Cmd().IsReal }

func (x InvocOf[A, D, L]) HasArg() bool { return x.Op.Cmd().HasArg }

// ArgRef returns the operand slot or nil if x.Op has none.
func (x *InvocOf[A, D, L]) ArgRef() *A {
	if !x.Op.Operand() {
		return nil
	}

	return &x.Arg
}

// Take moves the invocation out and leaves a NOP behind.
func (x *InvocOf[A, D, L]) Take() InvocOf[A, D, L] {
	r := *x
	*x = InvocOf[A, D, L]{Op: NOP}

	return r
}

func (x InvocOf[A, D, L]) AppendTo(b []byte) []byte {
	switch {
	case x.Op == DEF:
		return hfmt.Appendf(b, "DEF %v", x.Def)
	case x.Op == LABEL:
		return hfmt.Appendf(b, "%v:", x.Label)
	case x.Op.Operand():
		return hfmt.Appendf(b, "%v %v", x.Op, x.Arg)
	default:
		return append(b, x.Op.String()...)
	}
}

func (x InvocOf[A, D, L]) String() string {
	return string(x.AppendTo(nil))
}

func (x InvocOf[A, D, L]) TlogAppend(b []byte) []byte {
	var e tlwire.LowEncoder

	return e.AppendString(b, x.String())
}

func (s Statement) String() string {
	return s.Invoc.String()
}
