package render

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/google/renameio/v2"
)

// SavePNG renders into memory and then replaces path atomically. On any error
// the destination is left as it was and no temporary file remains.
func SavePNG(path string, draw func(io.Writer) error) error {
	var buf bytes.Buffer
	if err := draw(&buf); err != nil {
		if errors.Is(err, ErrRendering) || errors.Is(err, ErrNoData) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrRendering, err)
	}
	// The temp file lives next to path so the final rename never crosses filesystems.
	if err := renameio.WriteFile(path, buf.Bytes(), 0o644, renameio.WithTempDir(filepath.Dir(path))); err != nil {
		return fmt.Errorf("%w: write %s: %w", ErrRendering, path, err)
	}
	return nil
}
