package commands

import (
	"github.com/MKhiriev/go-config-gen/internal/config"
	"github.com/MKhiriev/go-config-gen/internal/logger"
	"github.com/spf13/cobra"
)

func newFileCommand(flagCfg *config.StructuredConfig, log *logger.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "file [path]",
		Short: "Generate accessors from modules stored in a local JSON file",
		Long: `Read one JSON file and generate accessors for the requested modules.

Every module is the top-level property of the same name; a missing module
stops the run without writing any output.`,
		Example: `  # Path as argument
  configgen file modules.json -n Acme.Settings -m Orders

  # Path from --file or SOURCE_FILE
  SOURCE_FILE=modules.json configgen file -n Acme.Settings -m Orders -o Config.g.cs`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flagCfg.Source.Mode = config.SourceModeFile
			if len(args) > 0 {
				flagCfg.Source.FilePath = args[0]
			}
			return generate(cmd.Context(), flagCfg, cmd.OutOrStdout(), log)
		},
	}

	return cmd
}
