package commands

import (
	"context"
	"fmt"

	"github.com/de-tools/edi-analytics/pkg/services/dashboard"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type ReportCmd struct {
	dashboard dashboard.Service
}

func NewReportCmd(svc dashboard.Service) *cobra.Command {
	rc := &ReportCmd{dashboard: svc}
	return &cobra.Command{
		Use:   "report",
		Short: "Print the EDI analytics report",
		Args:  cobra.NoArgs,
		RunE:  rc.run,
	}
}

// run is the top-level failure boundary: anything escaping the pipeline is
// logged and reported to the user, and the command still succeeds.
func (rc *ReportCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	logger := zerolog.Ctx(ctx)
	logger.Info().Msg("Starting EDI Analytics Dashboard")

	report, err := rc.generate(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("unexpected error in report pipeline")
		fmt.Fprintf(cmd.OutOrStdout(), "An unexpected error occurred: %v\n", err)
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), report)
	return nil
}

func (rc *ReportCmd) generate(ctx context.Context) (report string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return rc.dashboard.Report(ctx)
}
