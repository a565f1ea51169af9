package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLines(t *testing.T) {
	s := New()

	s.AddFile("a.lc1", []byte("LDA @1\r\n\r\nloop:\nHLT"))
	s.AddFile("b.lc1", []byte("NOP\n"))
	s.AddFile("empty.lc1", nil)

	assert.Equal(t, []Line{
		{File: "a.lc1", Num: 1, Text: "LDA @1"},
		{File: "a.lc1", Num: 2, Text: ""},
		{File: "a.lc1", Num: 3, Text: "loop:"},
		{File: "a.lc1", Num: 4, Text: "HLT"},
		{File: "b.lc1", Num: 1, Text: "NOP"},
	}, s.Lines())
}

func TestLineBlank(t *testing.T) {
	assert.True(t, Line{}.Blank())
	assert.True(t, Line{Text: " \t "}.Blank())
	assert.True(t, Line{Text: "\u00a0\v\f\r"}.Blank())
	assert.False(t, Line{Text: " a "}.Blank())

	assert.Equal(t, "x.lc1:3", Line{File: "x.lc1", Num: 3}.Pos())
}

func TestReadFile(t *testing.T) {
	ctx := context.Background()

	name := filepath.Join(t.TempDir(), "prog.lc1")
	require.NoError(t, os.WriteFile(name, []byte("HLT\n"), 0o644))

	s := New()

	require.NoError(t, s.ReadFile(ctx, name))
	assert.Equal(t, []Line{{File: name, Num: 1, Text: "HLT"}}, s.Lines())

	assert.Error(t, s.ReadFile(ctx, filepath.Join(t.TempDir(), "missing.lc1")))
}
