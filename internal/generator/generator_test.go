package generator

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newLayout returns the default layout rooted at a fresh web directory.
func newLayout(t *testing.T) Layout {
	t.Helper()
	web := filepath.Join(t.TempDir(), "web")
	require.NoError(t, os.MkdirAll(web, 0755))
	out := filepath.Join(web, "includes")
	return Layout{
		SourceDir:    web,
		OutputDir:    out,
		ManifestPath: filepath.Join(out, "web_files.h"),
		Extensions:   []string{".html", ".js"},
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func TestSourceFileNaming(t *testing.T) {
	f := SourceFile{Path: "web/index.html", Name: "index.html", Ext: ".html"}
	assert.Equal(t, "index_html", f.HeaderName())
	assert.Equal(t, "index_html.h", f.HeaderFile())
	assert.Equal(t, "data_index_html", f.Symbol(DefaultSymbolPrefix))

	multi := SourceFile{Name: "app.min.js", Ext: ".js"}
	assert.Equal(t, "app_min_js.h", multi.HeaderFile())

	l := Layout{OutputDir: filepath.Join("web", "includes")}
	assert.Equal(t, filepath.Join("web", "includes", "index_html.h"), l.HeaderPath(f))
}

func TestIsIdentifier(t *testing.T) {
	tests := map[string]bool{
		"data_index_html": true,
		"_x":              true,
		"A1":              true,
		"":                false,
		"1abc":            false,
		"data_my-page":    false,
		"data_café":  false,
	}
	for in, want := range tests {
		if got := IsIdentifier(in); got != want {
			t.Errorf("IsIdentifier(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestDiscover(t *testing.T) {
	l := newLayout(t)
	writeFile(t, filepath.Join(l.SourceDir, "z.js"), "z")
	writeFile(t, filepath.Join(l.SourceDir, "index.html"), "i")
	writeFile(t, filepath.Join(l.SourceDir, "about.html"), "a")
	writeFile(t, filepath.Join(l.SourceDir, "style.css"), "c")
	writeFile(t, filepath.Join(l.SourceDir, ".hidden.html"), "h")
	writeFile(t, filepath.Join(l.SourceDir, "nested", "deep.html"), "d")
	require.NoError(t, os.MkdirAll(filepath.Join(l.SourceDir, "dir.js"), 0755))

	files, err := Discover(l)
	require.NoError(t, err)

	var names []string
	for _, f := range files {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"about.html", "index.html", "z.js"}, names)
	assert.Equal(t, ".html", files[0].Ext)
	assert.Equal(t, filepath.Join(l.SourceDir, "z.js"), files[2].Path)
}

func TestDiscover_OverlappingExtensions(t *testing.T) {
	l := newLayout(t)
	l.Extensions = []string{".min.js", ".js"}
	writeFile(t, filepath.Join(l.SourceDir, "app.min.js"), "m")
	writeFile(t, filepath.Join(l.SourceDir, "app.js"), "a")

	files, err := Discover(l)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "app.min.js", files[0].Name)
	assert.Equal(t, "app.js", files[1].Name)
}

func TestDiscover_MissingDirectory(t *testing.T) {
	l := newLayout(t)
	l.SourceDir = filepath.Join(l.SourceDir, "missing")
	files, err := Discover(l)
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestWriteHeader_Format(t *testing.T) {
	l := newLayout(t)
	writeFile(t, filepath.Join(l.SourceDir, "index.html"), "<b>\n")
	files, err := Discover(l)
	require.NoError(t, err)
	require.Len(t, files, 1)

	path, err := WriteHeader(l, files[0], DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(l.OutputDir, "index_html.h"), path)

	want := "/* WARNING: Automatically Generated File */\n" +
		"unsigned char data_index_html[] = {\n" +
		"0x3c, 0x62, 0x3e, 0x0d, 0x0a,\n" +
		"};\n"
	assert.Equal(t, want, readFile(t, path))
}

func TestWriteHeader_EmptyFile(t *testing.T) {
	l := newLayout(t)
	writeFile(t, filepath.Join(l.SourceDir, "empty.js"), "")

	path, err := WriteHeader(l, SourceFile{Path: filepath.Join(l.SourceDir, "empty.js"), Name: "empty.js", Ext: ".js"}, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "/* WARNING: Automatically Generated File */\nunsigned char data_empty_js[] = {\n};\n", readFile(t, path))
}

func TestWriteHeader_Overwrites(t *testing.T) {
	l := newLayout(t)
	src := filepath.Join(l.SourceDir, "a.js")
	f := SourceFile{Path: src, Name: "a.js", Ext: ".js"}

	writeFile(t, src, "first version of the file")
	_, err := WriteHeader(l, f, DefaultOptions())
	require.NoError(t, err)

	writeFile(t, src, "B")
	path, err := WriteHeader(l, f, DefaultOptions())
	require.NoError(t, err)
	assert.Contains(t, readFile(t, path), "{\n0x42,\n};\n")
}

func TestWriteHeader_UnreadableSource(t *testing.T) {
	l := newLayout(t)
	f := SourceFile{Path: filepath.Join(l.SourceDir, "gone.html"), Name: "gone.html", Ext: ".html"}
	_, err := WriteHeader(l, f, DefaultOptions())
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.False(t, exists(l.HeaderPath(f)))
}

func TestWriteHeader_WrapsLongFiles(t *testing.T) {
	l := newLayout(t)
	writeFile(t, filepath.Join(l.SourceDir, "big.js"), strings.Repeat("var x = 1;\n", 200))
	files, err := Discover(l)
	require.NoError(t, err)

	path, err := WriteHeader(l, files[0], DefaultOptions())
	require.NoError(t, err)

	body := strings.Split(readFile(t, path), "\n")
	// warning, declaration, values..., "};", trailing empty string
	require.Greater(t, len(body), 4)
	for i, line := range body[2 : len(body)-2] {
		assert.LessOrEqual(t, len(line), DefaultWrapWidth, "line %d", i)
		assert.NotEmpty(t, line, "blank line %d inside array body", i)
	}
	assert.Equal(t, "};", body[len(body)-2])
}

func TestGenerate(t *testing.T) {
	l := newLayout(t)
	writeFile(t, filepath.Join(l.SourceDir, "index.html"), "<html></html>")
	writeFile(t, filepath.Join(l.SourceDir, "request.js"), "fetch('/')")
	writeFile(t, filepath.Join(l.SourceDir, "readme.txt"), "not embedded")

	res, err := Generate(context.Background(), l, DefaultOptions())
	require.NoError(t, err)

	assert.Len(t, res.Files, 2)
	assert.Equal(t, []string{
		filepath.Join(l.OutputDir, "index_html.h"),
		filepath.Join(l.OutputDir, "request_js.h"),
	}, res.Headers)
	assert.Equal(t, []string{"index_html.h", "request_js.h"}, res.Includes)
	assert.Empty(t, res.Removed)

	assert.Contains(t, readFile(t, res.Headers[0]), "unsigned char data_index_html[] = {")
	assert.Contains(t, readFile(t, res.Headers[1]), "unsigned char data_request_js[] = {")
	assert.False(t, exists(filepath.Join(l.OutputDir, "readme_txt.h")))

	wantManifest := "/* WARNING: Automatically Generated File */\n" +
		"#include <index_html.h>\n" +
		"#include <request_js.h>\n"
	assert.Equal(t, wantManifest, readFile(t, l.ManifestPath))

	// A second run cleans and regenerates the same output.
	res2, err := Generate(context.Background(), l, DefaultOptions())
	require.NoError(t, err)
	assert.Len(t, res2.Removed, 3)
	assert.Equal(t, wantManifest, readFile(t, l.ManifestPath))
}

func TestGenerate_EmptyInputSet(t *testing.T) {
	l := newLayout(t)

	res, err := Generate(context.Background(), l, DefaultOptions())
	require.NoError(t, err)
	assert.Empty(t, res.Headers)
	assert.Empty(t, res.Includes)

	assert.Equal(t, WarningComment+"\n", readFile(t, l.ManifestPath))

	entries, err := os.ReadDir(l.OutputDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "web_files.h", entries[0].Name())
}

func TestGenerate_Cancelled(t *testing.T) {
	l := newLayout(t)
	writeFile(t, filepath.Join(l.SourceDir, "index.html"), "x")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Generate(ctx, l, DefaultOptions())
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, exists(l.ManifestPath))
}

func TestWriteManifest_SkipsMissingHeaders(t *testing.T) {
	l := newLayout(t)
	writeFile(t, filepath.Join(l.SourceDir, "a.html"), "a")
	writeFile(t, filepath.Join(l.SourceDir, "b.html"), "b")
	files, err := Discover(l)
	require.NoError(t, err)

	_, err = WriteHeader(l, files[1], DefaultOptions())
	require.NoError(t, err)

	includes, err := WriteManifest(l, files)
	require.NoError(t, err)
	assert.Equal(t, []string{"b_html.h"}, includes)
	assert.Equal(t, WarningComment+"\n#include <b_html.h>\n", readFile(t, l.ManifestPath))
}

func TestClean_Idempotent(t *testing.T) {
	l := newLayout(t)
	writeFile(t, filepath.Join(l.SourceDir, "index.html"), "i")
	writeFile(t, filepath.Join(l.SourceDir, "app.js"), "a")

	_, err := Generate(context.Background(), l, DefaultOptions())
	require.NoError(t, err)

	removed, err := CleanAll(l)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		l.ManifestPath,
		filepath.Join(l.OutputDir, "index_html.h"),
		filepath.Join(l.OutputDir, "app_js.h"),
	}, removed)

	removed, err = CleanAll(l)
	require.NoError(t, err)
	assert.Empty(t, removed)

	assert.False(t, exists(l.ManifestPath))
	assert.False(t, exists(filepath.Join(l.OutputDir, "index_html.h")))
	assert.False(t, exists(filepath.Join(l.OutputDir, "app_js.h")))
}

func TestClean_KeepsUnrelatedFiles(t *testing.T) {
	l := newLayout(t)
	writeFile(t, filepath.Join(l.SourceDir, "index.html"), "i")
	writeFile(t, filepath.Join(l.SourceDir, "old.js"), "o")
	_, err := Generate(context.Background(), l, DefaultOptions())
	require.NoError(t, err)

	// The source of old_js.h disappears; its header is no longer ours to remove.
	require.NoError(t, os.Remove(filepath.Join(l.SourceDir, "old.js")))
	writeFile(t, filepath.Join(l.OutputDir, "handwritten.h"), "/* keep */")

	_, err = CleanAll(l)
	require.NoError(t, err)
	assert.False(t, exists(filepath.Join(l.OutputDir, "index_html.h")))
	assert.True(t, exists(filepath.Join(l.OutputDir, "old_js.h")))
	assert.True(t, exists(filepath.Join(l.OutputDir, "handwritten.h")))
}

func TestClean_NoOutputDirectory(t *testing.T) {
	l := newLayout(t)
	writeFile(t, filepath.Join(l.SourceDir, "index.html"), "i")

	removed, err := CleanAll(l)
	require.NoError(t, err)
	assert.Empty(t, removed)
	assert.False(t, exists(l.OutputDir))
}

func TestGenerate_PreserveMode(t *testing.T) {
	l := newLayout(t)
	content := "line one\nline two\r\n"
	writeFile(t, filepath.Join(l.SourceDir, "page.html"), content)

	opts := DefaultOptions()
	opts.Encode.CRLF = false
	opts.SymbolPrefix = "asset_"

	res, err := Generate(context.Background(), l, opts)
	require.NoError(t, err)

	header := readFile(t, res.Headers[0])
	assert.Contains(t, header, "unsigned char asset_page_html[] = {")

	start := strings.Index(header, "{\n") + 2
	end := strings.LastIndex(header, "};")
	lines := strings.Split(strings.TrimSuffix(header[start:end], "\n"), "\n")
	assert.Equal(t, []byte(content), decode(t, lines))
}
