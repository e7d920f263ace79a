package main

import (
	"fmt"
	"net"
	"os"
	"strconv"

	"github.com/de-tools/edi-analytics/pkg/runtime/logging"
	"github.com/de-tools/edi-analytics/pkg/runtime/terminal"
	"github.com/de-tools/edi-analytics/pkg/server"
	"github.com/de-tools/edi-analytics/pkg/services/analytics"
	"github.com/de-tools/edi-analytics/pkg/services/config"
	"github.com/de-tools/edi-analytics/pkg/services/dashboard"
	"github.com/de-tools/edi-analytics/pkg/services/source"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Serve the EDI analytics dashboard over HTTP",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "", "Path to an optional YAML config file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	envErr := godotenv.Load()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger, err := logging.New(logging.Settings{Level: cfg.Log.Level, File: cfg.Log.File})
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer logger.Close()

	if envErr != nil {
		logger.Debug().Err(envErr).Msg("no .env file loaded")
	}

	svc := dashboard.NewService(source.Sample(), analytics.NewAnalyzer(), terminal.NewReporter())

	addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
	api := server.NewWebAPI(server.Config{
		Addr:            addr,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Dependencies: server.Dependencies{
			Dashboard: svc,
			Logger:    logger.Logger,
		},
	})

	logger.Info().Msg("Starting EDI Analytics Dashboard")
	return api.Start(cmd.Context())
}
