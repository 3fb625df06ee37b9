// Package importer finds statement PDFs to convert and archives them
// afterwards.
package importer

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ProcessedDir is the subdirectory converted statements are moved into.
const ProcessedDir = "processed"

// FileInfo describes a PDF found by Scan.
type FileInfo struct {
	Name string
	Path string
	Size int64
}

// Scan returns the PDF files directly inside dir, sorted by name. A missing
// dir yields no files and no error, so callers can point it at an inbox
// that has not been created yet.
func Scan(dir string) ([]FileInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading import dir: %w", err)
	}

	var files []FileInfo
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if !strings.HasSuffix(strings.ToLower(e.Name()), ".pdf") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", e.Name(), err)
		}
		files = append(files, FileInfo{
			Name: e.Name(),
			Path: filepath.Join(dir, e.Name()),
			Size: info.Size(),
		})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return files, nil
}

// Resolve expands arguments into PDF paths. Directories contribute their
// PDFs; files are kept as given.
func Resolve(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil || !info.IsDir() {
			// Missing files surface when the extractor opens them.
			paths = append(paths, arg)
			continue
		}
		files, err := Scan(arg)
		if err != nil {
			return nil, err
		}
		if len(files) == 0 {
			return nil, fmt.Errorf("no PDF files in %s", arg)
		}
		for _, f := range files {
			paths = append(paths, f.Path)
		}
	}
	return paths, nil
}

// MarkProcessed moves path into a processed/ directory next to it.
func MarkProcessed(path string) (string, error) {
	dstDir := filepath.Join(filepath.Dir(path), ProcessedDir)
	if err := os.MkdirAll(dstDir, 0o755); err != nil {
		return "", fmt.Errorf("creating processed dir: %w", err)
	}

	dst := filepath.Join(dstDir, filepath.Base(path))
	if err := os.Rename(path, dst); err != nil {
		return "", fmt.Errorf("moving %s to processed: %w", filepath.Base(path), err)
	}
	return dst, nil
}
