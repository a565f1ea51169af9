package compiler

import (
	"fmt"
	"strings"
)

type (
	LineError struct {
		File string
		Line int
		Text string
		Err  error
	}

	LineErrors []LineError
)

func (e LineError) Error() string {
	return fmt.Sprintf("%s:%d: %q: %v", e.File, e.Line, e.Text, e.Err)
}

func (e LineError) Unwrap() error {
	return e.Err
}

func (e LineErrors) Error() string {
	var b strings.Builder

	for i, le := range e {
		if i != 0 {
			b.WriteByte('\n')
		}

		b.WriteString(le.Error())
	}

	return b.String()
}

func (e LineErrors) Unwrap() []error {
	r := make([]error, len(e))

	for i, le := range e {
		r[i] = le
	}

	return r
}
