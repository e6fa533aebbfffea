package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/askiada/survey-report/internal/config"
	"github.com/askiada/survey-report/pkg/report"
	"github.com/askiada/survey-report/pkg/report/drawer"
	"github.com/askiada/survey-report/pkg/report/measure"
)

var logger *zap.Logger

var rootCmd = &cobra.Command{
	Use:   "survey-report",
	Short: "Build the Health Care Benefits Strategy survey report",
	Long: `survey-report renders the survey datasets under data/ into a multi-page PDF report
(out/report.pdf) and one PNG image per page (out/figures).

Pages whose dataset is missing or malformed are logged and left out of the report.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = zap.NewProductionConfig().Build()
		if err != nil {
			return errors.Wrap(err, "failed to initialize logger")
		}
		logger = logger.With(zap.String("run_id", uuid.NewString()))

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return buildReport(cmd.Context(), cmd.OutOrStdout())
	},
}

func buildReport(ctx context.Context, out io.Writer) error {
	cfg, err := config.Default()
	if err != nil {
		return errors.Wrap(err, "unable to load report definition")
	}

	fmt.Fprintln(out, "Building Health Care Benefits Strategy Survey Report...")

	msr := measure.NewDefaultMeasure()
	rpt, err := report.New(cfg,
		report.WithLogger(logger),
		report.WithProgress(out),
		report.WithRunOptions(
			measure.RunMeasure(msr),
			drawer.RunDrawer(drawer.NewDOTDrawer(cfg.Layout.Graph), msr),
		),
	)
	if err != nil {
		return errors.Wrap(err, "unable to create report")
	}

	res, err := rpt.Run(ctx)
	if err != nil {
		return err
	}

	printSummary(out, res)

	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "Error generating report: %v\n", err)
		os.Exit(1)
	}
	stop()
}
