package app

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-config-gen/internal/adapter"
	"github.com/MKhiriev/go-config-gen/internal/config"
	"github.com/MKhiriev/go-config-gen/internal/logger"
	"github.com/MKhiriev/go-config-gen/internal/service"
	"github.com/MKhiriev/go-config-gen/internal/store"
)

// App runs one generation pass for a validated configuration.
type App struct {
	cfg *config.StructuredConfig

	generator service.Generator
	output    store.OutputWriter

	logger *logger.Logger
}

// NewApp builds the module source selected by cfg.Source.Mode, the generation
// service and an output writer that sends stdout-bound code to stdout.
func NewApp(cfg *config.StructuredConfig, stdout io.Writer, logger *logger.Logger) (*App, error) {
	source, err := NewModuleSource(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MsgCreatingSource, err)
	}

	generator, err := service.NewGeneratorService(source, cfg.Generator, logger)
	if err != nil {
		return nil, err
	}

	return newApp(cfg, generator, store.NewOutputWriter(stdout, logger), logger), nil
}

func newApp(cfg *config.StructuredConfig, generator service.Generator, output store.OutputWriter, logger *logger.Logger) *App {
	return &App{
		cfg:       cfg,
		generator: generator,
		output:    output,
		logger:    logger,
	}
}

// NewModuleSource returns the Consul or file source depending on
// cfg.Source.Mode.
func NewModuleSource(cfg *config.StructuredConfig, logger *logger.Logger) (adapter.ModuleSource, error) {
	switch cfg.Source.Mode {
	case config.SourceModeConsul:
		return adapter.NewConsulSource(cfg.Consul, logger)
	case config.SourceModeFile:
		return adapter.NewFileSource(cfg.Source.FilePath, logger)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSourceMode, cfg.Source.Mode)
	}
}

// Run resolves the module options, generates the code and writes it to the
// configured output. Nothing is written when any step before it fails.
func (a *App) Run(ctx context.Context) error {
	options, err := a.cfg.ModuleOptions()
	if err != nil {
		return fmt.Errorf("%s: %w", MsgLoadingModuleOptions, err)
	}

	modules := make([]string, 0, len(options))
	for _, opt := range options {
		modules = append(modules, opt.ModuleName)
	}
	a.logger.Debug().
		Str("mode", a.cfg.Source.Mode).
		Strs("modules", modules).
		Str("namespace", a.cfg.Generator.Namespace).
		Msg("starting generation")

	code, err := a.generator.Generate(ctx, options)
	if err != nil {
		return fmt.Errorf("%s: %w", MsgGenerating, err)
	}

	if err = a.output.Write(ctx, a.cfg.Generator.OutputPath, code); err != nil {
		return fmt.Errorf("%s: %w", MsgWritingOutput, err)
	}

	a.logger.Info().
		Strs("modules", modules).
		Str("output", a.cfg.Generator.OutputPath).
		Msg(MsgRunFinished)
	return nil
}
