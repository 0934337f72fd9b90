package generator

import (
	"context"
	"log/slog"
	"time"
)

// Generate runs the default pipeline: it discovers the assets, removes the
// previous output, writes one header per asset and finally writes the
// aggregate header. Assets are processed one at a time and the first error
// aborts the run.
//
// Parameters:
//   - ctx: Checked between assets so a watch session can stop a run.
//   - layout: The generator layout.
//   - opts: Rendering options.
//
// Returns:
//   - *Result: What was discovered, removed and written.
//   - error: An error if any step fails.
func Generate(ctx context.Context, layout Layout, opts Options) (*Result, error) {
	start := time.Now()

	files, err := Discover(layout)
	if err != nil {
		return nil, err
	}
	res := &Result{Files: files, Manifest: layout.ManifestPath}

	res.Removed, err = Clean(layout, files)
	if err != nil {
		return res, err
	}

	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		path, err := WriteHeader(layout, f, opts)
		if err != nil {
			return res, err
		}
		res.Headers = append(res.Headers, path)
	}

	res.Includes, err = WriteManifest(layout, files)
	if err != nil {
		return res, err
	}

	slog.Info("generated headers",
		"source", layout.SourceDir,
		"output", layout.OutputDir,
		"files", len(files),
		"elapsed", time.Since(start),
	)
	return res, nil
}

// CleanAll discovers the assets and removes all generated output for them.
func CleanAll(layout Layout) ([]string, error) {
	files, err := Discover(layout)
	if err != nil {
		return nil, err
	}
	removed, err := Clean(layout, files)
	if err != nil {
		return removed, err
	}
	slog.Info("cleaned headers", "output", layout.OutputDir, "removed", len(removed))
	return removed, nil
}
