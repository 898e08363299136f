package commands

import (
	"github.com/MKhiriev/go-config-gen/internal/config"
	"github.com/MKhiriev/go-config-gen/internal/logger"
	"github.com/spf13/cobra"
)

func newConsulCommand(flagCfg *config.StructuredConfig, log *logger.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "consul",
		Short: "Generate accessors from modules stored in Consul K/V",
		Long: `Fetch every module from the Consul K/V HTTP API and generate accessors.

Each module is read from GET /v1/kv/<module>; the Value of the first entry
is decoded from base64 and parsed as the module's JSON document.`,
		Example: `  # Two modules from a local agent, code to stdout
  configgen consul -n Acme.Settings -m Orders,Billing -o -

  # Global module plus per-module filters from an options file
  configgen consul -n Acme.Settings --options options.yaml --consul-address consul.internal --consul-token $TOKEN`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flagCfg.Source.Mode = config.SourceModeConsul
			return generate(cmd.Context(), flagCfg, cmd.OutOrStdout(), log)
		},
	}

	return cmd
}
