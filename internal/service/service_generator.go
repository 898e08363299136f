package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-config-gen/internal/adapter"
	"github.com/MKhiriev/go-config-gen/internal/codegen"
	"github.com/MKhiriev/go-config-gen/internal/config"
	"github.com/MKhiriev/go-config-gen/internal/logger"
	"github.com/MKhiriev/go-config-gen/internal/utils"
	"github.com/MKhiriev/go-config-gen/models"
	"golang.org/x/sync/errgroup"
)

type generatorService struct {
	source adapter.ModuleSource

	namespace   string
	concurrency int

	runIDs *utils.UUIDGenerator
	logger *logger.Logger
}

// NewGeneratorService builds a [Generator] that resolves modules through
// source and renders them into cfg.Namespace. At most cfg.Concurrency modules
// are fetched at the same time; a non-positive value means one at a time.
func NewGeneratorService(source adapter.ModuleSource, cfg config.Generator, logger *logger.Logger) (Generator, error) {
	if source == nil {
		return nil, ErrNoModuleSource
	}
	if cfg.Namespace == "" {
		return nil, ErrNamespaceIsNotSpecified
	}

	concurrency := cfg.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	return &generatorService{
		source:      source,
		namespace:   cfg.Namespace,
		concurrency: concurrency,
		runIDs:      utils.NewUUIDGenerator(),
		logger:      logger,
	}, nil
}

func (s *generatorService) Generate(ctx context.Context, options []models.ModuleOption) (string, error) {
	if len(options) == 0 {
		return "", ErrNoModules
	}

	runID := s.runIDs.Generate()
	log := s.logger.GetChildLogger()
	log.Logger = log.With().Str("run_id", runID).Logger()

	ctx = context.WithValue(ctx, utils.RunIDCtxKey, runID)
	ctx = log.WithContext(ctx)

	// broken filter rules must fail before anything is fetched
	for _, opt := range options {
		if _, err := codegen.CompileRules(opt); err != nil {
			return "", err
		}
	}

	start := time.Now()
	modules, err := s.resolve(ctx, options)
	if err != nil {
		log.Err(err).Msg("module resolution failed")
		return "", err
	}

	code, err := codegen.Generate(s.namespace, modules)
	if err != nil {
		log.Err(err).Msg("code generation failed")
		return "", fmt.Errorf("generate code: %w", err)
	}

	log.Info().
		Int("modules", len(modules)).
		Int("bytes", len(code)).
		Dur("duration", time.Since(start)).
		Msg("code generated")

	return code, nil
}

// resolve fetches every module concurrently and returns the documents in the
// order of options. The first failure cancels the remaining fetches.
func (s *generatorService) resolve(ctx context.Context, options []models.ModuleOption) ([]models.ModuleDocument, error) {
	modules := make([]models.ModuleDocument, len(options))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, opt := range options {
		i, opt := i, opt
		g.Go(func() error {
			start := time.Now()
			node, err := s.source.Fetch(gctx, opt.ModuleName)
			if err != nil {
				return fmt.Errorf("resolve module %s: %w", opt.ModuleName, err)
			}

			logger.FromContext(gctx).Debug().
				Str("module", opt.ModuleName).
				Int("fields", len(node.Fields)).
				Dur("duration", time.Since(start)).
				Msg("module resolved")

			modules[i] = models.ModuleDocument{Option: opt, Document: node}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return modules, nil
}
