package gen

import (
	"bytes"
	"errors"
	"fmt"
	"os"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes all generated files. A non-empty outputDir overrides
// each file's own directory and is created if it doesn't exist.
func WriteFiles(files []GeneratedFile, outputDir string) error {
	paths, err := outputPaths(files, outputDir)
	if err != nil {
		return err
	}

	if outputDir != "" {
		err = os.MkdirAll(outputDir, dirPerm)
		if err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	for i, file := range files {
		err = os.WriteFile(paths[i], file.Content, filePerm)
		if err != nil {
			return fmt.Errorf("writing file %s: %w", file.Filename, err)
		}
	}

	return nil
}

// Stale returns the output paths whose content on disk differs from files,
// including outputs that do not exist yet.
func Stale(files []GeneratedFile, outputDir string) ([]string, error) {
	paths, err := outputPaths(files, outputDir)
	if err != nil {
		return nil, err
	}

	var stale []string

	for i, file := range files {
		outputPath := paths[i]

		existing, err := os.ReadFile(outputPath)
		switch {
		case errors.Is(err, os.ErrNotExist):
			stale = append(stale, outputPath)
		case err != nil:
			return nil, fmt.Errorf("reading %s: %w", outputPath, err)
		case !bytes.Equal(existing, file.Content):
			stale = append(stale, outputPath)
		}
	}

	return stale, nil
}

// outputPaths returns the output path of each file. Two sources that map to
// the same path (same base name, one --out directory) are an error.
func outputPaths(files []GeneratedFile, outputDir string) ([]string, error) {
	paths := make([]string, len(files))
	seen := make(map[string]string, len(files))

	for i, file := range files {
		path := file.Path(outputDir)
		if prev, ok := seen[path]; ok {
			return nil, fmt.Errorf("%s and %s both generate %s", prev, file.Source, path)
		}

		seen[path] = file.Source
		paths[i] = path
	}

	return paths, nil
}
