// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/andersen-lab/BarcodeForge/internal/appcore"
	"github.com/andersen-lab/BarcodeForge/internal/cli"
	"github.com/andersen-lab/BarcodeForge/internal/cmdutil"
	"github.com/andersen-lab/BarcodeForge/internal/version"
	"github.com/andersen-lab/BarcodeForge/internal/writers"
)

const plotExamples = `  # PNG at the default 150 dpi
  barcodeforge plot-barcode -i barcodes.csv -o barcode_plot.png

  # vector output with custom colours, debug progress on stderr
  barcodeforge --debug plot-barcode -i barcodes.csv.gz -o barcode.svg --palette palette.yaml

  # inspect the pivoted matrix while plotting
  barcodeforge plot-barcode -i barcodes.csv --print-matrix text | column -t`

// runError marks a failure from the pipeline itself; everything else that
// comes out of Execute is a command-line usage error.
type runError struct{ err error }

func (e *runError) Error() string { return e.err.Error() }
func (e *runError) Unwrap() error { return e.err }

// NewRootCmd builds the command tree writing to stdout and stderr.
func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var debug, quiet bool

	root := &cobra.Command{
		Use:           "barcodeforge",
		Short:         "Mutation barcode tooling",
		Long:          "barcodeforge turns lineage × mutation indicator matrices into barcode heatmaps.",
		Version:       version.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetVersionTemplate("barcodeforge version {{.Version}}\n")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "print progress and data shape to stderr")
	root.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress info and warnings")
	root.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return fmt.Errorf("%w (see '%s --help')", err, c.CommandPath())
	})

	var opts cli.Options
	plot := &cobra.Command{
		Use:     "plot-barcode",
		Short:   "Render a barcode heatmap from an indicator CSV",
		Example: plotExamples,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cli.Finish(cmd.Flags(), &opts)
			opts.Debug, opts.Quiet = debug, quiet
			if err := opts.Validate(); err != nil {
				return err
			}
			log := cmdutil.NewLogger(stderr, opts.Debug, opts.Quiet)
			err := appcore.CreateBarcodePlot(cmd.Context(), log, appcore.Options{
				Input:       opts.Input,
				Output:      opts.Output,
				PaletteFile: opts.PaletteFile,
				DPI:         opts.DPI,
				PrintMatrix: opts.PrintMatrix,
				Header:      opts.Header,
			}, stdout)
			if err != nil {
				return &runError{err: err}
			}
			return nil
		},
	}
	cli.Register(plot.Flags(), &opts)
	plot.Flags().SortFlags = false
	root.AddCommand(plot)
	return root
}

// RunContext executes argv and returns the process exit code.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	root := NewRootCmd(outw, stderr)
	root.SetArgs(argv)
	err := root.ExecuteContext(parent)

	if e := outw.Flush(); e != nil && !writers.IsBrokenPipe(e) && err == nil {
		_, _ = fmt.Fprintln(stderr, e)
		return appcore.ExitFailure
	}
	if err == nil {
		return appcore.ExitOK
	}

	log := cmdutil.NewLogger(stderr, false, false)
	var re *runError
	if !errors.As(err, &re) {
		log.Errorf("%v", err)
		return appcore.ExitUsage
	}
	code := appcore.ExitCode(re.err)
	if code != appcore.ExitCanceled {
		log.Errorf("%v", re.err)
	}
	return code
}

// Run is RunContext without cancellation.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
