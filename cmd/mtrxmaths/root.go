// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/katalvlaran/mtrxmaths/config"
	"github.com/katalvlaran/mtrxmaths/dispatch"
	"github.com/katalvlaran/mtrxmaths/matrix"
	"github.com/katalvlaran/mtrxmaths/textio"
)

var errStdinTwice = errors.New("standard input (-) can be used for one operand only")

// rootFlags holds the parsed command line.
type rootFlags struct {
	ops         map[dispatch.Op]*bool
	economy     bool
	locale      string
	singularTol float64
}

// newRootCmd builds the command; cfg supplies the flag defaults.
func newRootCmd(cfg *config.Config) *cobra.Command {
	f := &rootFlags{ops: make(map[dispatch.Op]*bool)}

	cmd := &cobra.Command{
		Use:   "mtrxmaths OPT FILE1 [FILE2]",
		Short: "Elementary dense-matrix operations on plain-text matrices",
		Long: `mtrxmaths reads one or two matrices from text files ("-" reads standard input),
applies exactly one operation and prints the result with 17 significant digits.

A matrix file has one row per line, entries separated by spaces and/or commas.
Lines starting with # are comments; the first blank line ends the matrix.`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return f.run(cmd, args)
		},
	}

	names := make([]string, 0, len(dispatch.Ops()))
	for _, op := range dispatch.Ops() {
		f.ops[op] = cmd.Flags().BoolP(op.String(), op.Short(), false, op.Help())
		names = append(names, op.String())
	}
	cmd.MarkFlagsMutuallyExclusive(names...)
	cmd.MarkFlagsOneRequired(names...)

	defaultLocale := ""
	if cfg.Locale != language.Und {
		defaultLocale = cfg.Locale.String()
	}
	cmd.Flags().BoolVar(&f.economy, "economy", false, "with --qr, print the reduced factors Q[:, :cols] and R[:cols, :]")
	cmd.Flags().StringVar(&f.locale, "locale", defaultLocale, "display numbers for a BCP 47 locale, e.g. de-DE (env "+config.EnvLocale+")")
	cmd.Flags().Float64Var(&f.singularTol, "singular-tol", cfg.SingularTol,
		"relative pivot tolerance for inversion and division; 0 = exact-zero pivot test (env "+config.EnvSingularTol+")")

	return cmd
}

// selected returns the single operation flag that was set.
func (f *rootFlags) selected() dispatch.Op {
	for _, op := range dispatch.Ops() {
		if *f.ops[op] {
			return op
		}
	}

	return dispatch.Op(-1) // unreachable: the flag group requires exactly one
}

func (f *rootFlags) run(cmd *cobra.Command, args []string) error {
	op := f.selected()
	if len(args) != op.Arity() {
		_ = cmd.Usage()
		return fmt.Errorf("--%s takes %d matrix argument(s), got %d: %w", op, op.Arity(), len(args), dispatch.ErrArity)
	}
	if len(args) == 2 && args[0] == textio.StdinName && args[1] == textio.StdinName {
		return errStdinTwice
	}
	eff := config.Config{SingularTol: f.singularTol, Locale: language.Und}
	if err := eff.Validate(); err != nil {
		return fmt.Errorf("--singular-tol: %w", err)
	}
	if f.locale != "" {
		tag, err := language.Parse(f.locale)
		if err != nil {
			return fmt.Errorf("--locale=%q: %w", f.locale, err)
		}
		eff.Locale = tag
	}

	operands := make([]matrix.Matrix, 0, len(args))
	for _, arg := range args {
		m, err := textio.Load(f.source(cmd, arg))
		if err != nil {
			return err
		}
		operands = append(operands, m)
	}

	res, err := dispatch.Run(op, operands, dispatch.Options{
		Algebra: eff.MatrixOptions(),
		Economy: f.economy,
	})
	if err != nil {
		return err
	}

	return res.Write(cmd.OutOrStdout(), args[0], eff.PrintOptions()...)
}

// source routes "-" to the command's input stream so tests can inject it.
func (f *rootFlags) source(cmd *cobra.Command, arg string) textio.Source {
	if arg == textio.StdinName {
		return textio.StdinSource{Reader: cmd.InOrStdin()}
	}

	return textio.SourceFor(arg)
}
