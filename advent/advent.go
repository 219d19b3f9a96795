package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"
)

var logger = zap.NewNop()

func main() {
	var err error
	logger, err = newLogger(zapcore.InfoLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "cannot create logger:", err)
		os.Exit(1)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = newRootCmd(os.Stdin, os.Stdout).ExecuteContext(ctx)
	stop()
	if err != nil {
		logger.Error("advent failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}

func newLogger(level zapcore.Level) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(level)
	return config.Build()
}

func recordCount(n int) zap.Field {
	return zap.String("records", humanize.Comma(int64(n)))
}

type options struct {
	configPath string
	verbose    bool

	// Only for the commands that solve puzzles.
	example    bool
	inputPath  string
	fgprofPath string

	cfg *config
}

var errNoSolution = errors.New("no solution given")

func newRootCmd(stdin io.Reader, stdout io.Writer) *cobra.Command {
	var opts options

	names := solutionNames()
	cmd := &cobra.Command{
		Use:   "advent [solution]",
		Short: "Solve Advent of Code puzzles",
		Long: "Solve Advent of Code puzzles. Each solution prints two lines: the\n" +
			"answers to parts one and two.\n\n" +
			"where solution is one of:\n  " + strings.Join(names, "\n  "),
		Args:          cobra.MaximumNArgs(1),
		ValidArgs:     names,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return opts.configure()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Usage()
				return errNoSolution
			}
			src, err := opts.inputSource(stdin)
			if err != nil {
				return err
			}
			r := runner{src: src}
			return withProfile(opts.fgprofPath, func() error {
				ans, err := r.solve(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return printAnswers(stdout, ans)
			})
		},
	}
	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "load input paths and log level from an ini `file`")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	opts.addSolveFlags(cmd)

	all := &cobra.Command{
		Use:   "all",
		Short: "Solve every puzzle in order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.inputPath != "" {
				return errors.New("--input cannot be used with all")
			}
			src, err := opts.inputSource(stdin)
			if err != nil {
				return err
			}
			r := runner{src: src}
			// Nothing is printed unless every solution succeeds.
			var results []answers
			err = withProfile(opts.fgprofPath, func() error {
				for _, name := range solutionNames() {
					ans, err := r.solve(cmd.Context(), name)
					if err != nil {
						return err
					}
					results = append(results, ans)
				}
				return nil
			})
			if err != nil {
				return err
			}
			return printAnswers(stdout, results...)
		},
	}
	opts.addSolveFlags(all)
	cmd.AddCommand(all)
	cmd.AddCommand(newPilotCmd())
	return cmd
}

func (opts *options) addSolveFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.BoolVar(&opts.example, "example", false, "use the embedded example input instead of the real one")
	flags.StringVar(&opts.inputPath, "input", "", "read input from `file` (- for stdin)")
	flags.StringVar(&opts.fgprofPath, "fgprof", "", "write an fgprof profile to `file`")
}

// configure loads the config file, if any, and sets up the global logger.
func (opts *options) configure() error {
	if opts.configPath != "" {
		cfg, err := loadConfig(opts.configPath)
		if err != nil {
			return err
		}
		opts.cfg = cfg
	}
	level := zapcore.InfoLevel
	if opts.cfg != nil && opts.cfg.logLevel != nil {
		level = *opts.cfg.logLevel
	}
	if opts.verbose {
		level = zapcore.DebugLevel
	}
	l, err := newLogger(level)
	if err != nil {
		return fmt.Errorf("cannot create logger: %w", err)
	}
	logger = l
	return nil
}

func (opts *options) inputSource(stdin io.Reader) (inputSource, error) {
	if opts.inputPath != "" {
		if opts.example {
			return nil, errors.New("--input and --example are mutually exclusive")
		}
		return fileInput{path: opts.inputPath, stdin: stdin}, nil
	}
	var src inputSource = newEmbeddedInputs(opts.example)
	if opts.cfg != nil && len(opts.cfg.inputs) > 0 && !opts.example {
		src = configInputs{paths: opts.cfg.inputs, fallback: src}
	}
	return src, nil
}

type answers [2]uint64

type solution func(ctx context.Context, input []byte) (answers, error)

var solutions = make(map[string]solution)

func register(name string, fn solution) {
	if _, ok := solutions[name]; ok {
		panic(fmt.Sprintf("duplicate solutions registered for %q", name))
	}
	solutions[name] = fn
}

func solutionNames() []string {
	var names []string
	for name := range solutions {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return nameLess(names[i], names[j]) })
	return names
}

// solveParts runs both parts concurrently. The parts only read their
// (already parsed) input.
func solveParts(ctx context.Context, part1, part2 func() (uint64, error)) (answers, error) {
	var ans answers
	g, ctx := errgroup.WithContext(ctx)
	for i, part := range []func() (uint64, error){part1, part2} {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			n, err := part()
			if err != nil {
				return fmt.Errorf("part %d: %w", i+1, err)
			}
			ans[i] = n
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return answers{}, err
	}
	return ans, nil
}

type runner struct {
	src inputSource
}

func (r runner) solve(ctx context.Context, name string) (answers, error) {
	fn, ok := solutions[name]
	if !ok {
		return answers{}, fmt.Errorf("unknown solution %q", name)
	}
	input, err := r.src.Input(name)
	if err != nil {
		return answers{}, err
	}
	logger.Debug("loaded input",
		zap.String("solution", name),
		zap.String("size", humanize.Bytes(uint64(len(input)))),
	)
	start := time.Now()
	ans, err := fn(ctx, input)
	if err != nil {
		return answers{}, fmt.Errorf("solution %s: %w", name, err)
	}
	logger.Debug("solved", zap.String("solution", name), zap.Duration("elapsed", time.Since(start)))
	return ans, nil
}

func printAnswers(w io.Writer, all ...answers) error {
	for _, ans := range all {
		for _, n := range ans {
			if _, err := fmt.Fprintln(w, n); err != nil {
				return err
			}
		}
	}
	return nil
}

func nameLess(name0, name1 string) bool {
	n0, s0 := splitName(name0)
	n1, s1 := splitName(name1)
	if n0 < n1 {
		return true
	}
	if n0 > n1 {
		return false
	}
	return s0 < s1
}

func splitName(name string) (int, string) {
	i := 0
	for ; i < len(name); i++ {
		c := name[i]
		if c < '0' || c > '9' {
			break
		}
	}
	n, err := strconv.Atoi(name[:i])
	if err != nil {
		panic(err)
	}
	return n, name[i:]
}
