package main

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

//go:embed inputs/*.txt
var inputFS embed.FS

// An inputSource supplies the puzzle input for a solution.
type inputSource interface {
	Input(name string) ([]byte, error)
}

// embeddedInputs reads <name>.txt, or <name>_example.txt for the worked
// example from the puzzle text.
type embeddedInputs struct {
	fsys    fs.FS
	example bool
}

func newEmbeddedInputs(example bool) embeddedInputs {
	fsys, err := fs.Sub(inputFS, "inputs")
	if err != nil {
		panic(err)
	}
	return embeddedInputs{fsys: fsys, example: example}
}

func (e embeddedInputs) Input(name string) ([]byte, error) {
	filename := name + ".txt"
	if e.example {
		filename = name + "_example.txt"
	}
	b, err := fs.ReadFile(e.fsys, filename)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("no embedded input for solution %s", name)
	}
	return b, err
}

// fileInput reads every solution's input from the same file.
type fileInput struct {
	path  string
	stdin io.Reader
}

func (f fileInput) Input(string) ([]byte, error) {
	if f.path == "-" {
		return io.ReadAll(f.stdin)
	}
	return os.ReadFile(f.path)
}

type configInputs struct {
	paths    map[string]string
	fallback inputSource
}

func (c configInputs) Input(name string) ([]byte, error) {
	path, ok := c.paths[name]
	if !ok {
		return c.fallback.Input(name)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("input for solution %s: %w", name, err)
	}
	return b, nil
}
