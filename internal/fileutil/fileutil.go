// Package fileutil provides shared file operation helpers.
package fileutil

import (
	"fmt"
	"io"
	"os"
)

// Rewrite replaces the entire contents of an open file with data.
// The handle must be positioned anywhere and writable; prior content is
// discarded before the new content is written.
func Rewrite(file *os.File, data []byte) error {
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("rewinding file: %w", err)
	}

	if err := file.Truncate(0); err != nil {
		return fmt.Errorf("truncating file: %w", err)
	}

	if _, err := file.Write(data); err != nil {
		return fmt.Errorf("writing file: %w", err)
	}

	return nil
}
