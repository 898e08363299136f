package adapter

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-config-gen/internal/document"
	"github.com/MKhiriev/go-config-gen/internal/logger"
	"github.com/MKhiriev/go-config-gen/models"
)

type fileSource struct {
	path string
	root *models.Node

	logger *logger.Logger
}

// NewFileSource parses the JSON file at path once and returns a
// [ModuleSource] that serves each module from the top-level property of the
// same name.
//
// Returns an error wrapping [ErrInvalidFile] if the file cannot be opened,
// is not valid JSON, or its root is not an object.
func NewFileSource(path string, logger *logger.Logger) (ModuleSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}
	defer f.Close()

	root, err := document.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidFile, path, err)
	}
	if root.Kind != models.KindObject {
		return nil, fmt.Errorf("%w: %s: root is %s, expected object", ErrInvalidFile, path, root.Kind)
	}

	logger.Debug().
		Str("path", path).
		Int("modules", len(root.Fields)).
		Msg("loaded configuration file")

	return &fileSource{path: path, root: root, logger: logger}, nil
}

// Fetch implements [ModuleSource]. A missing or null property is reported as
// [ErrModuleNotFound] naming both the module and the file.
func (s *fileSource) Fetch(ctx context.Context, moduleName string) (*models.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	node, ok := s.root.Field(moduleName)
	if !ok || node.Kind == models.KindNull {
		return nil, fmt.Errorf("%w: could not find %s property in %s", ErrModuleNotFound, moduleName, s.path)
	}
	if node.Kind != models.KindObject {
		return nil, fmt.Errorf("%w: %s in %s is %s", ErrModuleNotObject, moduleName, s.path, node.Kind)
	}

	return node, nil
}
