package generator

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
)

// Clean deletes the aggregate header and the header of every file in files.
// Headers that do not exist are skipped, so calling Clean twice is a no-op.
// Headers whose source file is gone are not touched.
//
// Returns the paths that were removed.
func Clean(layout Layout, files []SourceFile) ([]string, error) {
	targets := make([]string, 0, len(files)+1)
	targets = append(targets, layout.ManifestPath)
	for _, f := range files {
		targets = append(targets, layout.HeaderPath(f))
	}

	var removed []string
	for _, path := range targets {
		ok, err := removeIfExists(path)
		if err != nil {
			return removed, fmt.Errorf("failed to remove %s: %w", path, err)
		}
		if ok {
			slog.Debug("removed", "path", path)
			removed = append(removed, path)
		}
	}
	return removed, nil
}

// removeIfExists removes path when it is a regular file.
func removeIfExists(path string) (bool, error) {
	if !isRegularFile(path) {
		return false, nil
	}
	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
