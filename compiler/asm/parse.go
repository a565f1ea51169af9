package asm

import (
	"strings"
)

type (
	// pending marks a payload slot whose mnemonic is recognized
	// but whose argument is not parsed yet.
	pending struct{}

	shape = InvocOf[pending, pending, string]
)

// ParseInvoc parses one line of text, without line terminator.
//
//	line        := NAME ':' | MNEMONIC (WS argument)?
//	argument    := '@' UINT16 | '$' UINT16 | NAME
func ParseInvoc(line string) (x Invoc, err error) {
	if len(line) < 2 {
		return x, ErrTooShort
	}

	if strings.HasSuffix(line, ":") {
		return LabelDef(line[:len(line)-1]), nil
	}

	parts := strings.Fields(line)

	var arg string
	hasArg := false

	switch len(parts) {
	case 0:
		return x, ErrTooShort
	case 1:
	case 2:
		arg, hasArg = parts[1], true
	default:
		if strings.HasSuffix(parts[0], ":") {
			return x, ErrInlineLabel
		}

		return x, TooManyTokensError{N: len(parts)}
	}

	sh, err := recognize(parts[0])
	if err != nil {
		return x, err
	}

	need := func() (string, error) {
		if !hasArg {
			return "", ErrArgumentNotFound
		}

		return arg, nil
	}

	return MapInvoc(sh,
		func(pending) (Argument, error) {
			tok, err := need()
			if err != nil {
				return Argument{}, err
			}

			return ParseArgument(tok)
		},
		func(pending) (uint16, error) {
			tok, err := need()
			if err != nil {
				return 0, err
			}

			return parseUint16(tok)
		},
		func(name string) (string, error) {
			return name, nil
		},
		func() error {
			if hasArg {
				return ErrUnexpectedArgument
			}

			return nil
		},
	)
}

// recognize matches the mnemonic only.
func recognize(tok string) (x shape, err error) {
	op, ok := LookupOp(tok)
	if !ok {
		if strings.Contains(tok, ":") {
			return x, ErrInlineLabel
		}

		return x, ErrUnknownCommand
	}

	return shape{Op: op}, nil
}

func (pending) String() string { return "<pending>" }
