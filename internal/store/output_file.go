package store

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-config-gen/internal/config"
	"github.com/MKhiriev/go-config-gen/internal/logger"
)

const outputFileMode = 0o644

// outputFileStorage is the default implementation of [OutputWriter]. Files are
// written to a temporary sibling first and renamed over the target, so a
// reader never observes a partially written file.
type outputFileStorage struct {
	stdout io.Writer

	logger *logger.Logger
}

// NewOutputWriter constructs an [OutputWriter] that sends stdout-bound output
// to stdout.
func NewOutputWriter(stdout io.Writer, logger *logger.Logger) OutputWriter {
	return &outputFileStorage{
		stdout: stdout,
		logger: logger,
	}
}

func (s *outputFileStorage) Write(ctx context.Context, path string, content string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if path == "" || path == config.StdoutPath {
		if _, err := io.WriteString(s.stdout, content); err != nil {
			return fmt.Errorf("%w: stdout: %w", ErrWritingOutput, err)
		}
		return nil
	}

	if err := s.writeFile(path, content); err != nil {
		return err
	}

	s.logger.Info().
		Str("path", path).
		Int("bytes", len(content)).
		Msg("generated code written")
	return nil
}

func (s *outputFileStorage) writeFile(path string, content string) (err error) {
	dir := filepath.Dir(path)
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: %w", ErrCreatingOutputDir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWritingOutput, err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.WriteString(content); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingOutput, err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingOutput, err)
	}
	if err = tmp.Chmod(outputFileMode); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingOutput, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingOutput, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("%w: %w", ErrReplacingOutput, err)
	}

	return nil
}
