package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"
)

func newPilotCmd() *cobra.Command {
	var historyFile string
	cmd := &cobra.Command{
		Use:   "pilot",
		Short: "Steer a submarine interactively",
		Long: "Read submarine commands (forward N, up N, down N) one per line and\n" +
			"print the state under both readings of the manual after each one.\n" +
			"Also understands reset and plan.",
		Args: cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return runPilot(historyFile)
		},
	}
	cmd.Flags().StringVar(&historyFile, "history", filepath.Join(os.TempDir(), "advent-pilot.txt"), "readline history `file`")
	return cmd
}

func runPilot(historyFile string) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      "> ",
		HistoryFile: historyFile,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	var p pilot
	for {
		line, err := rl.Readline()
		switch err {
		case nil:
		case readline.ErrInterrupt:
			continue
		case io.EOF:
			return nil
		default:
			return err
		}
		msg, err := p.handle(line)
		if err != nil {
			fmt.Fprintln(rl.Stderr(), err)
			continue
		}
		if msg != "" {
			fmt.Fprintln(rl.Stdout(), msg)
		}
	}
}

// A pilot applies commands to a submarine under both models as they are
// typed. A command that fails under either model is not applied to either.
type pilot struct {
	plan  []command
	moved submarine
	aimed submarine
}

func (p *pilot) handle(line string) (string, error) {
	switch line = strings.TrimSpace(line); line {
	case "":
		return "", nil
	case "reset":
		*p = pilot{}
		return p.status(), nil
	case "plan":
		return strings.TrimSuffix(formatPlan(p.plan), "\n"), nil
	}
	c, err := parseCommand(line)
	if err != nil {
		return "", err
	}
	moved, err := p.moved.move(c)
	if err != nil {
		return "", fmt.Errorf("%s: %w", c, err)
	}
	aimed, err := p.aimed.steer(c)
	if err != nil {
		return "", fmt.Errorf("%s (with aim): %w", c, err)
	}
	p.moved, p.aimed = moved, aimed
	p.plan = append(p.plan, c)
	return p.status(), nil
}

func (p *pilot) status() string {
	return fmt.Sprintf("part 1: %s product=%s\npart 2: %s product=%s",
		p.moved, productString(p.moved), p.aimed, productString(p.aimed))
}

func productString(s submarine) string {
	n, err := s.product()
	if err != nil {
		return "overflow"
	}
	return fmt.Sprint(n)
}
