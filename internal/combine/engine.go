// Package combine concatenates the listed files into a single output file.
package combine

import (
	"os"
	"strings"
	"unicode/utf8"

	"combind/internal/config"
	"combind/internal/errors"
	"combind/internal/log"
	"combind/pkg/types"
)

// Separator is the literal inserted between consecutive file contents in the
// output. It is fixed; making it user-configurable is out of scope.
const Separator = "\n---\n"

// Engine performs the combine operation
type Engine struct {
	separator string
}

// New creates a new combine engine with the fixed separator
func New() *Engine {
	return &Engine{separator: Separator}
}

// NewWithConfig creates a combine engine taking its separator from the
// configuration defaults
func NewWithConfig(cfg *config.Config) *Engine {
	sep := cfg.Output.Separator
	if sep == "" {
		sep = Separator
	}
	return &Engine{separator: sep}
}

// NewWithSeparator creates an engine with an explicit separator. Used by tests
// to pin the literal independently of the package constant.
func NewWithSeparator(sep string) *Engine {
	return &Engine{separator: sep}
}

// Separator returns the separator the engine writes between entries
func (e *Engine) Separator() string {
	return e.separator
}

// ReadFile reads a single listed file as text. Failures are classified so the
// presentation layer can tell the user whether the file is missing, not
// readable, or not text.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.NewFileError("file not found", path, errors.FileNotFound, err)
		}
		if os.IsPermission(err) {
			return "", errors.NewFileError("permission denied", path, errors.FileAccessDenied, err)
		}
		return "", errors.NewFileError("error reading file", path, errors.FileAccessDenied, err)
	}
	if !utf8.Valid(data) {
		return "", errors.NewFileError("file is not valid text", path, errors.DecodeFailed, nil)
	}
	return string(data), nil
}

// Build reads every file in the snapshot in order and returns their contents
// joined by the engine's separator, with no trailing separator. Any read
// failure aborts the whole build, so callers never see partial content.
func (e *Engine) Build(snapshot []string) (string, error) {
	if len(snapshot) == 0 {
		return "", errors.ErrEmptyList
	}

	var sb strings.Builder
	for i, path := range snapshot {
		content, err := ReadFile(path)
		if err != nil {
			log.Errorf("Combine aborted: %v", err)
			return "", err
		}
		if i > 0 {
			sb.WriteString(e.separator)
		}
		sb.WriteString(content)
	}
	return sb.String(), nil
}

// Combine builds the concatenation of the snapshot and writes it to
// outputPath. The operation is all or nothing: any read failure aborts before
// the output file is created or truncated, so no partial artifact is ever
// left behind. An existing file at outputPath is overwritten without warning.
func (e *Engine) Combine(snapshot []string, outputPath string) (*types.CombineResult, error) {
	combined, err := e.Build(snapshot)
	if err != nil {
		return nil, err
	}

	if err := os.WriteFile(outputPath, []byte(combined), 0644); err != nil {
		log.Errorf("Failed to write combined file: %v", err)
		return nil, errors.NewFileError("failed to write output file", outputPath, errors.FileWriteFailed, err)
	}

	log.Info("Combined %d files into %s", len(snapshot), outputPath)
	return &types.CombineResult{
		OutputPath: outputPath,
		FileCount:  len(snapshot),
		Bytes:      len(combined),
	}, nil
}
