package generator

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Discover lists the assets in layout.SourceDir whose names end in one of
// layout.Extensions. Files are grouped by extension in allow-list order and
// sorted by name within a group. Dot-files, directories and other
// non-regular entries are skipped. A missing source directory yields no
// files.
func Discover(layout Layout) ([]SourceFile, error) {
	entries, err := os.ReadDir(layout.SourceDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Debug("source directory does not exist", "dir", layout.SourceDir)
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read source directory %s: %w", layout.SourceDir, err)
	}

	var files []SourceFile
	seen := make(map[string]bool)
	for _, ext := range layout.Extensions {
		for _, entry := range entries {
			name := entry.Name()
			if strings.HasPrefix(name, ".") || !strings.HasSuffix(name, ext) || seen[name] {
				continue
			}
			path := filepath.Join(layout.SourceDir, name)
			info, err := os.Stat(path)
			if err != nil {
				return nil, fmt.Errorf("failed to stat %s: %w", path, err)
			}
			if !info.Mode().IsRegular() {
				continue
			}
			seen[name] = true
			files = append(files, SourceFile{Path: path, Name: name, Ext: ext})
		}
	}

	slog.Debug("discovered assets", "dir", layout.SourceDir, "count", len(files))
	return files, nil
}
