package commands

import (
	"github.com/Gnanasekark/Online-property-listing/pkg/config"
	"github.com/Gnanasekark/Online-property-listing/pkg/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// ServiceName labels logs and metrics
const ServiceName = "property-listing"

// NewRootCmd builds the CLI
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "property-listing",
		Short:        "Online property listing API",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		ServeCmd(),
		MigrateCmd(),
	)
	return rootCmd
}

// setup loads configuration and initializes the global logger
func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(ServiceName)
	if err != nil {
		return nil, nil, err
	}

	if err := logger.InitLogger(&logger.LogConfig{
		Level:       cfg.Log.Level,
		Environment: cfg.Server.Env,
		ServiceName: cfg.ServiceName,
	}); err != nil {
		return nil, nil, err
	}

	log := logger.GetLogger()
	log.Info("Configuration loaded", cfg.LogConfig()...)
	return cfg, log, nil
}
