package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-config-gen/cmd/configgen/commands"
	"github.com/MKhiriev/go-config-gen/internal/logger"
	"github.com/MKhiriev/go-config-gen/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("configgen")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := commands.Execute(ctx, buildInfo, log); err != nil {
		stop()
		log.Fatal().Err(err).Msg("command execution failed")
	}
}

// printBuildInfo goes to stderr, stdout may carry the generated code.
func printBuildInfo(info models.AppBuildInfo) {
	fmt.Fprintf(os.Stderr, "Build version: %s\n", info.BuildVersion())
	fmt.Fprintf(os.Stderr, "Build date: %s\n", info.BuildDate())
	fmt.Fprintf(os.Stderr, "Build commit: %s\n", info.BuildCommit())
}
