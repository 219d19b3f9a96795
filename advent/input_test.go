package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedInputs(t *testing.T) {
	fsys := fstest.MapFS{
		"1.txt":         {Data: []byte("real\n")},
		"1_example.txt": {Data: []byte("example\n")},
	}
	b, err := embeddedInputs{fsys: fsys}.Input("1")
	require.NoError(t, err)
	assert.Equal(t, "real\n", string(b))

	b, err = embeddedInputs{fsys: fsys, example: true}.Input("1")
	require.NoError(t, err)
	assert.Equal(t, "example\n", string(b))

	_, err = embeddedInputs{fsys: fsys}.Input("2")
	require.EqualError(t, err, "no embedded input for solution 2")
}

func TestEmbeddedInputsComplete(t *testing.T) {
	for _, name := range solutionNames() {
		for _, example := range []bool{false, true} {
			b, err := newEmbeddedInputs(example).Input(name)
			require.NoError(t, err, "solution %s (example=%t)", name, example)
			assert.NotEmpty(t, b)
		}
	}
}

func TestFileInput(t *testing.T) {
	b, err := fileInput{path: "-", stdin: strings.NewReader("1\n2\n")}.Input("1")
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n", string(b))

	path := filepath.Join(t.TempDir(), "in.txt")
	require.NoError(t, os.WriteFile(path, []byte("up 3\n"), 0o644))
	for _, name := range []string{"1", "2"} {
		b, err = fileInput{path: path}.Input(name)
		require.NoError(t, err)
		assert.Equal(t, "up 3\n", string(b))
	}
}

type stubInputs map[string]string

func (s stubInputs) Input(name string) ([]byte, error) {
	in, ok := s[name]
	if !ok {
		return nil, errors.New("no input")
	}
	return []byte(in), nil
}

func TestConfigInputs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "2.txt")
	require.NoError(t, os.WriteFile(path, []byte("forward 1\n"), 0o644))
	src := configInputs{
		paths: map[string]string{
			"2": path,
			"3": filepath.Join(dir, "missing.txt"),
		},
		fallback: stubInputs{"1": "fallback\n"},
	}

	b, err := src.Input("1")
	require.NoError(t, err)
	assert.Equal(t, "fallback\n", string(b))

	b, err = src.Input("2")
	require.NoError(t, err)
	assert.Equal(t, "forward 1\n", string(b))

	_, err = src.Input("3")
	require.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "input for solution 3")
}
