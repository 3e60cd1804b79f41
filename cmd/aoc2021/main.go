// The aoc2021 command runs the Advent of Code 2021 solutions.
//
//	aoc2021 day01                   # reads puzzle-inputs/day01-input
//	aoc2021 day13 -f in.txt -p two
//	aoc2021 day05 --sample
//	aoc2021 samples
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	aoc "github.com/maisem/aoc2021"
	"github.com/maisem/aoc2021/internal/config"
	"github.com/maisem/aoc2021/y2021"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line args and returns the exit status.
func run(args []string, stdout, stderr io.Writer) int {
	year, err := y2021.New()
	if err != nil {
		fmt.Fprintf(stderr, "aoc2021: %v\n", err)
		return 1
	}
	if args == nil {
		args = []string{} // cobra falls back to os.Args on nil
	}
	root := newRootCmd(year)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	cmd, err := root.ExecuteC()
	if err == nil {
		return 0
	}
	var ue *aoc.UsageError
	if errors.As(err, &ue) {
		fmt.Fprintf(stderr, "Error: %v\n\n%s", err, cmd.UsageString())
		return 2
	}
	fmt.Fprintf(stderr, "aoc2021: %v\n", err)
	return 1
}

type app struct {
	year *aoc.Year

	cfgFile   string
	inputsDir string
	debug     bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd(year *aoc.Year) *cobra.Command {
	a := &app{year: year}
	root := &cobra.Command{
		Use:   "aoc2021",
		Short: fmt.Sprintf("Advent of Code %d solutions", year.Year()),
		Long: fmt.Sprintf(`Advent of Code %d solutions, one subcommand per day.

Each day reads its puzzle input from <inputs-dir>/dayNN-input unless
--file is given, and prints the answer to each part.`, year.Year()),
		SilenceErrors: true,
		SilenceUsage:  true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return aoc.Usagef("unknown day %q", args[0])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return aoc.Usagef("%v", err)
	})

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (yaml)")
	pf.StringVar(&a.inputsDir, "inputs-dir", config.DefaultInputsDir, "directory holding the dayNN-input files")
	pf.BoolVar(&a.debug, "debug", false, "enable debug logging")

	for _, d := range year.Days() {
		root.AddCommand(a.dayCmd(d))
	}
	root.AddCommand(a.samplesCmd())
	return root
}

// init loads the config and sets up logging. Logs go to stderr so that
// stdout only carries answers.
func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgFile, cmd.Flags())
	if err != nil {
		return err
	}
	a.cfg = cfg

	zc := zap.NewProductionConfig()
	zc.Encoding = "console"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zc.DisableStacktrace = true
	if cfg.Debug {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	a.logger, err = zc.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return aoc.Usagef("%s: unexpected argument %q", cmd.Name(), args[0])
	}
	return nil
}

func (a *app) dayCmd(d int) *cobra.Command {
	var (
		file   string
		part   string
		sample bool
	)
	name := fmt.Sprintf("day%02d", d)
	cmd := &cobra.Command{
		Use:   name,
		Short: fmt.Sprintf("Day %d: %s", d, a.year.Title(d)),
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := aoc.NormalizePart(part)
			if err != nil {
				return err
			}
			opts := aoc.RunOptions{Part: p, Sample: sample, Logger: a.logger}
			if !sample {
				path := file
				if path == "" {
					path = filepath.Join(a.cfg.InputsDir, name+"-input")
				}
				a.logger.Debug("reading input", zap.String("path", path))
				if opts.Input, err = aoc.ReadInput(path); err != nil {
					return err
				}
			}
			results, err := a.year.Solve(d, opts)
			failed := 0
			for _, r := range results {
				printResult(cmd.OutOrStdout(), r)
				if !r.OK() {
					failed++
				}
			}
			if err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("%s: %d sample answer(s) wrong", name, failed)
			}
			return nil
		},
	}
	if d < 10 {
		cmd.Aliases = []string{fmt.Sprintf("day%d", d)}
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "puzzle input file (default <inputs-dir>/"+name+"-input)")
	cmd.Flags().StringVarP(&part, "part", "p", "", "part to run: one, two, 1 or 2 (default all)")
	cmd.Flags().BoolVar(&sample, "sample", false, "run against the embedded sample instead of the input")
	return cmd
}

func printResult(w io.Writer, r aoc.Result) {
	switch {
	case r.NoSample:
		fmt.Fprintf(w, "part %s: no sample\n", r.Part)
	case r.Sample && r.OK():
		fmt.Fprintf(w, "part %s: %v ✅\n", r.Part, r.Answer)
	case r.Sample:
		fmt.Fprintf(w, "part %s: %v ❌ want %s\n", r.Part, r.Answer, r.Want)
	default:
		fmt.Fprintf(w, "part %s: %v\n", r.Part, r.Answer)
	}
}

func (a *app) samplesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "samples",
		Short: "Check every day against its embedded samples",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			var failed []string
			for _, d := range a.year.Days() {
				results, err := a.year.Solve(d, aoc.RunOptions{Sample: true, Logger: a.logger})
				for _, r := range results {
					fmt.Fprintf(out, "day%02d ", d)
					printResult(out, r)
					if !r.OK() {
						failed = append(failed, fmt.Sprintf("day%02d part %s", d, r.Part))
					}
				}
				if err != nil {
					fmt.Fprintf(out, "day%02d ❌ %v\n", d, err)
					failed = append(failed, fmt.Sprintf("day%02d", d))
				}
			}
			if len(failed) > 0 {
				return fmt.Errorf("%d sample(s) failed: %s", len(failed), strings.Join(failed, ", "))
			}
			return nil
		},
	}
}
