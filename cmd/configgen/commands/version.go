package commands

import (
	"fmt"

	"github.com/MKhiriev/go-config-gen/models"
	"github.com/spf13/cobra"
)

func newVersionCommand(buildInfo models.AppBuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Build version: %s\n", buildInfo.BuildVersion())
			fmt.Fprintf(out, "Build date: %s\n", buildInfo.BuildDate())
			fmt.Fprintf(out, "Build commit: %s\n", buildInfo.BuildCommit())
			return nil
		},
	}
}
