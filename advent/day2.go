package main

import (
	"context"
	"errors"
	"fmt"
	"math/bits"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

func init() {
	register("2", day2)
}

func day2(ctx context.Context, input []byte) (answers, error) {
	plan, err := parsePlan(input)
	if err != nil {
		return answers{}, err
	}
	logger.Debug("parsed plan", recordCount(len(plan)))
	return solveParts(ctx,
		func() (uint64, error) { return finalProduct(plan, submarine.move) },
		func() (uint64, error) { return finalProduct(plan, submarine.steer) },
	)
}

var (
	// ErrUnderflow is returned when an up command would take the depth
	// (or aim) below zero.
	ErrUnderflow = errors.New("submarine rose above the surface")
	// ErrOverflow is returned when a submarine value doesn't fit in a uint64.
	ErrOverflow = errors.New("submarine value overflows uint64")
)

type commandKind uint8

const (
	forward commandKind = iota + 1
	up
	down
)

var commandNames = [...]string{
	forward: "forward",
	up:      "up",
	down:    "down",
}

func (k commandKind) String() string {
	if k == 0 || int(k) >= len(commandNames) {
		return fmt.Sprintf("commandKind(%d)", k)
	}
	return commandNames[k]
}

type command struct {
	kind   commandKind
	amount uint32
}

func (c command) String() string {
	return c.kind.String() + " " + strconv.FormatUint(uint64(c.amount), 10)
}

func parseCommand(s string) (command, error) {
	var c command
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return c, fmt.Errorf("%w: got %d fields; want 2", ErrParseCommand, len(fields))
	}
	switch fields[0] {
	case "forward":
		c.kind = forward
	case "up":
		c.kind = up
	case "down":
		c.kind = down
	default:
		return c, fmt.Errorf("%w: unknown command %q", ErrParseCommand, fields[0])
	}
	n, err := strconv.ParseUint(fields[1], 10, 32)
	if err != nil {
		return c, fmt.Errorf("%w: bad amount %q: %w", ErrParseCommand, fields[1], err.(*strconv.NumError).Err)
	}
	c.amount = uint32(n)
	return c, nil
}

// parsePlan parses one command per line. Any malformed line fails the
// whole parse.
func parsePlan(input []byte) ([]command, error) {
	var plan []command
	err := forLines(input, func(lineNum int, line string) error {
		c, err := parseCommand(line)
		if err != nil {
			return &ParseError{Line: lineNum, Text: line, Err: err}
		}
		plan = append(plan, c)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return plan, nil
}

// formatPlan is the inverse of parsePlan for canonically formatted input.
func formatPlan(plan []command) string {
	var b strings.Builder
	for _, c := range plan {
		b.WriteString(c.String())
		b.WriteByte('\n')
	}
	return b.String()
}

type submarine struct {
	position uint64
	depth    uint64
	aim      uint64
}

func (s submarine) String() string {
	return fmt.Sprintf("position=%d depth=%d aim=%d", s.position, s.depth, s.aim)
}

func (s submarine) product() (uint64, error) {
	hi, lo := bits.Mul64(s.position, s.depth)
	if hi != 0 {
		return 0, ErrOverflow
	}
	return lo, nil
}

// move applies c using the first reading of the manual: up and down change
// the depth directly.
func (s submarine) move(c command) (submarine, error) {
	var err error
	d := uint64(c.amount)
	switch c.kind {
	case forward:
		s.position, err = add(s.position, d)
	case up:
		s.depth, err = sub(s.depth, d)
	case down:
		s.depth, err = add(s.depth, d)
	default:
		panic(fmt.Sprintf("unhandled command kind %s", c.kind))
	}
	return s, err
}

// steer applies c using the aim: up and down change the aim, and forward
// moves along it.
func (s submarine) steer(c command) (submarine, error) {
	var err error
	d := uint64(c.amount)
	switch c.kind {
	case forward:
		if s.position, err = add(s.position, d); err != nil {
			return s, err
		}
		var dive uint64
		if dive, err = mul(s.aim, d); err != nil {
			return s, err
		}
		s.depth, err = add(s.depth, dive)
	case up:
		s.aim, err = sub(s.aim, d)
	case down:
		s.aim, err = add(s.aim, d)
	default:
		panic(fmt.Sprintf("unhandled command kind %s", c.kind))
	}
	return s, err
}

// runPlan folds plan over the zero submarine using step. On error, the
// returned submarine is the state before the failing command.
func runPlan(plan []command, step func(submarine, command) (submarine, error)) (submarine, error) {
	var s submarine
	for i, c := range plan {
		next, err := step(s, c)
		if err != nil {
			return s, fmt.Errorf("command %d (%s): %w", i+1, c, err)
		}
		s = next
	}
	return s, nil
}

func finalProduct(plan []command, step func(submarine, command) (submarine, error)) (uint64, error) {
	s, err := runPlan(plan, step)
	if err != nil {
		return 0, err
	}
	logger.Debug("terminal state", zap.Stringer("submarine", s))
	return s.product()
}

func add(a, b uint64) (uint64, error) {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, ErrOverflow
	}
	return sum, nil
}

func sub(a, b uint64) (uint64, error) {
	if b > a {
		return 0, ErrUnderflow
	}
	return a - b, nil
}

func mul(a, b uint64) (uint64, error) {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return 0, ErrOverflow
	}
	return lo, nil
}
