package main

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

func init() {
	register("1", day1)
}

func day1(ctx context.Context, input []byte) (answers, error) {
	depths, err := parseDepths(input)
	if err != nil {
		return answers{}, err
	}
	logger.Debug("parsed depths", recordCount(len(depths)))
	return solveParts(ctx,
		func() (uint64, error) { return countIncreases(depths), nil },
		func() (uint64, error) { return countWindowIncreases(depths, 3), nil },
	)
}

var (
	// ErrParse is returned (wrapped in a *ParseError) when a line is not a
	// valid depth.
	ErrParse = errors.New("invalid depth")
	// ErrParseCommand is returned (wrapped in a *ParseError) when a line is
	// not a valid submarine command.
	ErrParseCommand = errors.New("invalid submarine command")
)

// A ParseError records the line on which parsing failed.
type ParseError struct {
	Line int // 1-based
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Err, e.Text)
}

func (e *ParseError) Unwrap() error { return e.Err }

// forLines calls fn for each line of input. A trailing newline does not
// produce an empty final line, and a trailing \r is removed. Lines may be
// as long as the input.
func forLines(input []byte, fn func(lineNum int, line string) error) error {
	scanner := bufio.NewScanner(bytes.NewReader(input))
	scanner.Buffer(nil, max(len(input)+1, bufio.MaxScanTokenSize))
	var lineNum int
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if err := fn(lineNum, line); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// parseDepths parses one depth per line. Any line that isn't a uint32
// fails the whole parse.
func parseDepths(input []byte) ([]uint32, error) {
	var depths []uint32
	err := forLines(input, func(lineNum int, line string) error {
		n, err := strconv.ParseUint(line, 10, 32)
		if err != nil {
			return &ParseError{
				Line: lineNum,
				Text: line,
				Err:  fmt.Errorf("%w: %w", ErrParse, err.(*strconv.NumError).Err),
			}
		}
		depths = append(depths, uint32(n))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return depths, nil
}

func countIncreases(depths []uint32) uint64 {
	var n uint64
	for i := 1; i < len(depths); i++ {
		if depths[i] > depths[i-1] {
			n++
		}
	}
	return n
}

// countWindowIncreases sums each run of width consecutive depths and counts
// how many of those sums are larger than the one before.
func countWindowIncreases(depths []uint32, width int) uint64 {
	if width < 1 {
		panic("window width must be >= 1")
	}
	if len(depths) < width {
		return 0
	}
	var sum uint64
	for _, d := range depths[:width] {
		sum += uint64(d)
	}
	var n uint64
	for i := width; i < len(depths); i++ {
		next := sum + uint64(depths[i]) - uint64(depths[i-width])
		if next > sum {
			n++
		}
		sum = next
	}
	return n
}
