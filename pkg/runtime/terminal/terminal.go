package terminal

import (
	"fmt"
	"io"
	"os"

	"github.com/de-tools/edi-analytics/pkg/runtime/logging"
	"github.com/de-tools/edi-analytics/pkg/runtime/terminal/commands"
	"github.com/de-tools/edi-analytics/pkg/services/analytics"
	"github.com/de-tools/edi-analytics/pkg/services/config"
	"github.com/de-tools/edi-analytics/pkg/services/dashboard"
	"github.com/de-tools/edi-analytics/pkg/services/source"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	dashboard dashboard.Service
	logOutput io.Writer
	logger    *logging.Logger
	rootCmd   *cobra.Command

	configPath string
	logLevel   string
	logFile    string
}

// Options contain configuration for the CLI
type Options struct {
	Source    source.Provider
	Output    io.Writer // report
	LogOutput io.Writer // console log sink
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.LogOutput == nil {
		opts.LogOutput = os.Stderr
	}
	if opts.Source == nil {
		opts.Source = source.Sample()
	}

	cli := &CLI{
		dashboard: dashboard.NewService(opts.Source, analytics.NewAnalyzer(), NewReporter()),
		logOutput: opts.LogOutput,
	}

	cli.rootCmd = cli.newRootCmd()
	cli.rootCmd.SetOut(opts.Output)
	return cli
}

// Execute runs the selected command and closes the log sink afterwards.
func (cli *CLI) Execute() error {
	defer cli.closeLogger()
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	reportCmd := commands.NewReportCmd(cli.dashboard)

	cmd := &cobra.Command{
		Use:               "edi-analytics",
		Short:             "EDI transaction analytics dashboard",
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: cli.setupLogging,
		RunE:              reportCmd.RunE,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&cli.configPath, "config", "", "Path to an optional YAML config file")
	flags.StringVar(&cli.logLevel, "log-level", "", "Log level (overrides config)")
	flags.StringVar(&cli.logFile, "log-file", "", "Log file path (overrides config)")

	cmd.AddCommand(reportCmd)
	return cmd
}

func (cli *CLI) setupLogging(cmd *cobra.Command, _ []string) error {
	logCfg, err := config.LoadLog(cli.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		logCfg.Level = cli.logLevel
	}
	if cmd.Flags().Changed("log-file") {
		logCfg.File = cli.logFile
	}

	logger, err := logging.New(logging.Settings{
		Level:   logCfg.Level,
		File:    logCfg.File,
		Console: cli.logOutput,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	cli.logger = logger

	runLogger := logger.With().Str("run_id", uuid.NewString()).Logger()
	cmd.SetContext(runLogger.WithContext(cmd.Context()))
	return nil
}

func (cli *CLI) closeLogger() {
	if cli.logger == nil {
		return
	}
	if err := cli.logger.Close(); err != nil {
		fmt.Fprintf(cli.logOutput, "failed to close log file: %v\n", err)
	}
	cli.logger = nil
}
