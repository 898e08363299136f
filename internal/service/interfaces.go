package service

import (
	"context"

	"github.com/MKhiriev/go-config-gen/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/generator_mock.go -package=mock

// Generator resolves the documents of a set of modules and renders them into
// one generated source file.
type Generator interface {
	// Generate returns the generated source for options, in the given order.
	// No output is returned when any module fails to resolve or render.
	Generate(ctx context.Context, options []models.ModuleOption) (string, error)
}
