package source

import (
	"context"
	"fmt"
	"os"
	"strings"

	"tlog.app/go/errors"
	"tlog.app/go/tlog"
)

type (
	// State holds source files, all concatenated.
	State struct {
		b []byte

		files []file
	}

	file struct {
		base int
		size int
		name string
	}

	Line struct {
		File string
		Num  int // 1-based
		Text string
	}
)

func New() *State {
	return &State{}
}

// ReadFile reads the file and adds it to the state.
func (s *State) ReadFile(ctx context.Context, name string) error {
	text, err := os.ReadFile(name)
	if err != nil {
		return errors.Wrap(err, "read file")
	}

	tlog.SpanFromContext(ctx).V("source").Printw("read file", "size", len(text), "name", name)

	s.AddFile(name, text)

	return nil
}

func (s *State) AddFile(name string, text []byte) {
	f := file{
		name: name,
		base: len(s.b),
		size: len(text),
	}

	s.b = append(s.b, text...)

	s.files = append(s.files, f)
}

// Lines splits all files into lines.
// Line terminators, including a '\r' before '\n', are not part of Text.
func (s *State) Lines() (l []Line) {
	for _, f := range s.files {
		b := s.b[f.base : f.base+f.size]

		num := 0

		for st := 0; st < len(b); {
			end := st
			for end < len(b) && b[end] != '\n' {
				end++
			}

			next := end + 1

			if end > st && b[end-1] == '\r' {
				end--
			}

			num++

			l = append(l, Line{
				File: f.name,
				Num:  num,
				Text: string(b[st:end]),
			})

			st = next
		}
	}

	return l
}

// Blank reports whether the line has nothing but white space.
func (l Line) Blank() bool {
	return strings.TrimSpace(l.Text) == ""
}

func (l Line) Pos() string {
	return fmt.Sprintf("%s:%d", l.File, l.Num)
}
