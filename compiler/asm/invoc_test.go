package asm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandTable(t *testing.T) {
	withArg := map[Op]bool{LDA: true, LDB: true, MOV: true, JMP: true, JPS: true, JPO: true, CAL: true, RRA: true, RLA: true}
	noArg := map[Op]bool{MAB: true, ADD: true, SUB: true, AND: true, NOT: true, RET: true, HLT: true, NOP: true}

	ops := Ops()
	require.Len(t, ops, 19)

	for _, op := range ops {
		c := op.Cmd()

		switch {
		case withArg[op]:
			assert.Equal(t, Command{Mnemonic: op.String(), IsReal: true, HasArg: true}, c)
			assert.True(t, op.Operand(), "%v", op)
		case noArg[op]:
			assert.Equal(t, Command{Mnemonic: op.String(), IsReal: true, HasArg: false}, c)
			assert.False(t, op.Operand(), "%v", op)
		case op == DEF:
			assert.Equal(t, Command{Mnemonic: "DEF", IsReal: false, HasArg: true}, c)
			assert.False(t, op.Operand())
		case op == LABEL:
			assert.Equal(t, Command{Mnemonic: "Label", IsReal: false, HasArg: true}, c)
			assert.False(t, op.Operand())
		default:
			t.Errorf("unexpected op: %v", op)
		}
	}

	assert.Equal(t, "Op(200)", Op(200).String())
}

func TestLookupOp(t *testing.T) {
	for _, s := range []string{"lda", "LDA", "Lda", "lDa"} {
		op, ok := LookupOp(s)
		assert.True(t, ok, s)
		assert.Equal(t, LDA, op, s)
	}

	op, ok := LookupOp("def")
	assert.True(t, ok)
	assert.Equal(t, DEF, op)

	for _, s := range []string{"label", "Label", "XYZ", ""} {
		_, ok := LookupOp(s)
		assert.False(t, ok, s)
	}
}

func TestInvocMeta(t *testing.T) {
	x := WithArg(LDA, Abs(1))
	assert.Equal(t, "LDA", x.Mnemonic())
	assert.True(t, x.IsReal())
	assert.True(t, x.HasArg())

	x = Def(3)
	assert.False(t, x.IsReal())
	assert.True(t, x.HasArg())

	x = LabelDef("l")
	assert.Equal(t, "Label", x.Mnemonic())
	assert.False(t, x.IsReal())

	x = Plain(HLT)
	assert.False(t, x.HasArg())
	assert.Nil(t, x.ArgRef())
}

func TestWithArgNoOperand(t *testing.T) {
	x := WithArg(HLT, Abs(1))

	assert.Nil(t, x.ArgRef())
	assert.Equal(t, "HLT", x.String())

	y, err := ParseInvoc(x.String())
	require.NoError(t, err)
	assert.Equal(t, Plain(HLT), y)
	assert.NotEqual(t, x, y)
}

func TestInvocTake(t *testing.T) {
	x := WithArg(JMP, Ref("start"))

	ref := x.ArgRef()
	require.NotNil(t, ref)

	a := ref.Take()
	assert.Equal(t, Ref("start"), a)
	assert.Equal(t, WithArg(JMP, Argument{}), x)
	assert.Equal(t, "JMP @_", x.String())

	y := x.Take()
	assert.Equal(t, JMP, y.Op)
	assert.Equal(t, Plain(NOP), x)
	assert.Equal(t, Invoc{}, x)
}

func TestMapInvoc(t *testing.T) {
	type called struct{ arg, def, label, none int }

	mapper := func(c *called) func(Invoc) (InvocOf[string, string, string], error) {
		return func(x Invoc) (InvocOf[string, string, string], error) {
			return MapInvoc(x,
				func(a Argument) (string, error) { c.arg++; return a.String(), nil },
				func(d uint16) (string, error) { c.def++; return "d", nil },
				func(l string) (string, error) { c.label++; return l, nil },
				func() error { c.none++; return nil },
			)
		}
	}

	for _, tc := range []struct {
		X   Invoc
		Exp called
		Res InvocOf[string, string, string]
	}{
		{WithArg(MOV, Const(1)), called{arg: 1}, InvocOf[string, string, string]{Op: MOV, Arg: "$1"}},
		{Def(1), called{def: 1}, InvocOf[string, string, string]{Op: DEF, Def: "d"}},
		{LabelDef("x"), called{label: 1}, InvocOf[string, string, string]{Op: LABEL, Label: "x"}},
		{Plain(ADD), called{none: 1}, InvocOf[string, string, string]{Op: ADD}},
	} {
		var c called

		res, err := mapper(&c)(tc.X)
		require.NoError(t, err)
		assert.Equal(t, tc.Exp, c, "%v", tc.X)
		assert.Equal(t, tc.Res, res)
	}

	_, err := MapInvoc(Plain(RET),
		func(Argument) (int, error) { return 0, nil },
		func(uint16) (int, error) { return 0, nil },
		func(string) (int, error) { return 0, nil },
		func() error { return ErrInvalidArgument },
	)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestInvocString(t *testing.T) {
	assert.Equal(t, "LDA @42", WithArg(LDA, Abs(42)).String())
	assert.Equal(t, "MOV $3", WithArg(MOV, Const(3)).String())
	assert.Equal(t, "JMP start", WithArg(JMP, Ref("start")).String())
	assert.Equal(t, "DEF 7", Def(7).String())
	assert.Equal(t, "loop:", LabelDef("loop").String())
	assert.Equal(t, "HLT", Plain(HLT).String())
	assert.Equal(t, "NOP", Invoc{}.String())

	st := NewStatement(Plain(RET), true)
	assert.True(t, st.Optimizable)
	assert.Equal(t, "RET", st.String())
}
