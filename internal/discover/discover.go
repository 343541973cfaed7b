package discover

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName | packages.NeedFiles

// Sources returns the sorted, de-duplicated list of files with extension ext
// selected by patterns.
//
// A pattern may be a file, a directory, a directory followed by "/..." (walked
// recursively, skipping testdata and directories starting with "." or "_"),
// or a Go package pattern resolved with go/packages.
func Sources(patterns []string, ext string) ([]string, error) {
	if len(patterns) == 0 {
		patterns = []string{"."}
	}

	seen := make(map[string]bool)
	var files []string

	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	var pkgPatterns []string

	for _, pattern := range patterns {
		if root, ok := strings.CutSuffix(pattern, "/..."); ok && isDir(root) {
			found, err := walk(root, ext)
			if err != nil {
				return nil, err
			}

			for _, f := range found {
				add(f)
			}

			continue
		}

		info, err := os.Stat(pattern)
		switch {
		case err == nil && info.IsDir():
			found, err := inDir(pattern, ext)
			if err != nil {
				return nil, err
			}

			for _, f := range found {
				add(f)
			}
		case err == nil:
			add(filepath.Clean(pattern))
		default:
			pkgPatterns = append(pkgPatterns, pattern)
		}
	}

	if len(pkgPatterns) > 0 {
		dirs, err := packageDirs(pkgPatterns)
		if err != nil {
			return nil, err
		}

		for _, dir := range dirs {
			found, err := inDir(dir, ext)
			if err != nil {
				return nil, err
			}

			for _, f := range found {
				add(f)
			}
		}
	}

	slices.Sort(files)

	return files, nil
}

// packageDirs loads Go package patterns and returns their directories.
func packageDirs(patterns []string) ([]string, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	var dirs []string
	for _, pkg := range pkgs {
		var all []string
		all = append(all, pkg.GoFiles...)
		all = append(all, pkg.OtherFiles...)
		all = append(all, pkg.IgnoredFiles...)

		if len(all) == 0 {
			continue
		}

		dir := filepath.Dir(all[0])
		if !slices.Contains(dirs, dir) {
			dirs = append(dirs, dir)
		}
	}

	return dirs, nil
}

func inDir(dir, ext string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*"+ext))
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}

	var files []string
	for _, m := range matches {
		if isDir(m) {
			continue
		}

		files = append(files, filepath.Clean(m))
	}

	return files, nil
}

func walk(root, ext string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			name := d.Name()
			if path != root && (name == "testdata" || strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")) {
				return filepath.SkipDir
			}

			return nil
		}

		if strings.HasSuffix(path, ext) {
			files = append(files, filepath.Clean(path))
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}

	return files, nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
