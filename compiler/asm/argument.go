package asm

import (
	"strconv"

	"github.com/nikandfor/hacked/hfmt"
	"tlog.app/go/tlog/tlwire"
)

type (
	Kind uint8

	// Argument is an instruction operand.
	// The zero value is a Placeholder.
	Argument struct {
		Kind  Kind
		Value uint16 // Absolute and IdConst
		Name  string // Label
	}
)

const (
	Placeholder Kind = iota
	Absolute
	IdConst
	Label
)

func Abs(addr uint16) Argument {
	return Argument{Kind: Absolute, Value: addr}
}

func Const(v uint16) Argument {
	return Argument{Kind: IdConst, Value: v}
}

func Ref(name string) Argument {
	return Argument{Kind: Label, Name: name}
}

// ParseArgument parses a single whitespace-free token.
// The leading sigil selects the kind: '@' absolute, '$' indirect constant,
// anything else is a label reference taken verbatim.
func ParseArgument(tok string) (Argument, error) {
	if tok == "" {
		return Argument{}, ErrInvalidArgument
	}

	var k Kind

	switch tok[0] {
	case '@':
		k = Absolute
	case '$':
		k = IdConst
	default:
		return Ref(tok), nil
	}

	v, err := parseUint16(tok[1:])
	if err != nil {
		return Argument{}, err
	}

	return Argument{Kind: k, Value: v}, nil
}

// parseUint16 parses a decimal UINT16 with an optional leading '+'.
func parseUint16(s string) (uint16, error) {
	if len(s) > 1 && s[0] == '+' {
		s = s[1:]
	}

	v, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, IntegerError{Err: err}
	}

	return uint16(v), nil
}

// Type returns the sigil and the human readable kind name.
func (a Argument) Type() (sigil rune, name string) {
	switch a.Kind {
	case Absolute:
		return '@', "absolute"
	case IdConst:
		return '$', "ind.const"
	case Label:
		return ':', "label"
	default:
		return '_', "place.holder"
	}
}

// Take moves the value out and leaves a Placeholder behind.
func (a *Argument) Take() Argument {
	x := *a
	*a = Argument{}

	return x
}

func (a Argument) AppendTo(b []byte) []byte {
	switch a.Kind {
	case Absolute:
		return hfmt.Appendf(b, "@%d", a.Value)
	case IdConst:
		return hfmt.Appendf(b, "$%d", a.Value)
	case Label:
		return append(b, a.Name...)
	default:
		return append(b, "@_"...)
	}
}

func (a Argument) String() string {
	return string(a.AppendTo(nil))
}

func (a Argument) TlogAppend(b []byte) []byte {
	var e tlwire.LowEncoder

	return e.AppendString(b, a.String())
}

func (k Kind) String() string {
	_, name := Argument{Kind: k}.Type()

	return name
}
