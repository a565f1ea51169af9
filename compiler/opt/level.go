package opt

import (
	"tlog.app/go/errors"
)

type (
	Level int8
)

const (
	None Level = iota
	Normal
	Deep
)

// ParseLevel parses the command line form: 0, 1 or D.
// Empty string means None.
func ParseLevel(s string) (Level, error) {
	switch s {
	case "", "0":
		return None, nil
	case "1":
		return Normal, nil
	case "D", "d":
		return Deep, nil
	default:
		return None, errors.New("unsupported optimization level: %q (expected 0, 1 or D)", s)
	}
}

func (l Level) String() string {
	switch l {
	case None:
		return "0"
	case Normal:
		return "1"
	case Deep:
		return "D"
	default:
		return "Level(?)"
	}
}
