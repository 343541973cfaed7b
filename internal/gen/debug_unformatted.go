package gen

import (
	"os"
	"path/filepath"
	"strings"
)

// writeDebugUnformatted writes the spliced but unformatted output to a
// sidecar file next to the intended output, so a broken macro body can be
// inspected where the compiler would have seen it. Best-effort.
func writeDebugUnformatted(outDir, filename string, content []byte) error {
	if outDir == "" || filename == "" {
		return nil
	}

	if err := os.MkdirAll(outDir, dirPerm); err != nil {
		return err
	}

	// Not a .go file: the broken output must not break the package build.
	debugName := strings.TrimSuffix(filename, ".go") + ".unformatted.go.txt"

	return os.WriteFile(filepath.Join(outDir, debugName), content, filePerm)
}
