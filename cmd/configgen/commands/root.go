package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-config-gen/internal/app"
	"github.com/MKhiriev/go-config-gen/internal/config"
	"github.com/MKhiriev/go-config-gen/internal/logger"
	"github.com/MKhiriev/go-config-gen/models"
	"github.com/spf13/cobra"
)

// Execute runs the root command
func Execute(ctx context.Context, buildInfo models.AppBuildInfo, log *logger.Logger) error {
	rootCmd := newRootCommand(buildInfo, log)
	return rootCmd.ExecuteContext(ctx)
}

func newRootCommand(buildInfo models.AppBuildInfo, log *logger.Logger) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "configgen",
		Short: "Generate typed C# configuration accessors from JSON documents",
		Long: `configgen reads one JSON configuration document per module from Consul K/V
or from a local file and generates a C# file with typed, lazily cached
accessors mirroring the shape of every module.

Settings are taken, from lowest to highest priority, from built-in defaults,
the settings file (--config), the environment (optionally seeded from a .env
file) and the flags below.`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)",
			buildInfo.BuildVersion(), buildInfo.BuildCommit(), buildInfo.BuildDate()),
		SilenceUsage: true,
	}

	// Persistent flags available to all commands
	flagCfg := config.BindFlags(rootCmd.PersistentFlags())

	// Without a subcommand the source mode comes from the settings
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return generate(cmd.Context(), flagCfg, cmd.OutOrStdout(), log)
	}

	rootCmd.AddCommand(newConsulCommand(flagCfg, log))
	rootCmd.AddCommand(newFileCommand(flagCfg, log))
	rootCmd.AddCommand(newVersionCommand(buildInfo))

	return rootCmd
}

// generate merges flagCfg with the other configuration layers and runs one
// generation pass.
func generate(ctx context.Context, flagCfg *config.StructuredConfig, stdout io.Writer, log *logger.Logger) error {
	cfg, err := config.GetStructuredConfig(flagCfg)
	if err != nil {
		return fmt.Errorf("%s: %w", app.MsgLoadingConfig, err)
	}

	if err = logger.SetLevel(cfg.Log.Level); err != nil {
		return err
	}
	log.Debug().Any("config", redacted(*cfg)).Msg("received configs")

	a, err := app.NewApp(cfg, stdout, log)
	if err != nil {
		return err
	}
	return a.Run(ctx)
}

func redacted(cfg config.StructuredConfig) config.StructuredConfig {
	if cfg.Consul.Token != "" {
		cfg.Consul.Token = "***"
	}
	return cfg
}
