package gen_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

func runExampleIntegrationTest(t *testing.T, exampleName string) {
	t.Helper()

	repoRoot, err := filepath.Abs(filepath.Join("..", ".."))
	if err != nil {
		t.Fatalf("repo root: %v", err)
	}

	exampleDir := filepath.Join(repoRoot, "examples", exampleName)

	cmd := exec.CommandContext(t.Context(), "go", "run", "./cmd/exclusive", "gen", "./examples/"+exampleName)
	cmd.Dir = repoRoot

	b, err := cmd.CombinedOutput()
	if err != nil {
		// Best-effort: dump whatever got generated for easier debugging.
		if matches, globErr := filepath.Glob(filepath.Join(exampleDir, "*_exclusive*.go")); globErr == nil {
			for _, p := range matches {
				if fb, rerr := os.ReadFile(p); rerr == nil {
					t.Logf("generated file %s:\n%s", p, string(fb))
				}
			}
		}

		t.Fatalf("gen failed: %v\n%s", err, string(b))
	}

	check := exec.CommandContext(t.Context(), "go", "run", "./cmd/exclusive", "check", "./examples/"+exampleName)
	check.Dir = repoRoot

	b, err = check.CombinedOutput()
	if err != nil {
		t.Fatalf("check after gen failed: %v\n%s", err, string(b))
	}

	test := exec.CommandContext(t.Context(), "go", "test", "./examples/"+exampleName, "-count=1")
	test.Dir = repoRoot

	b, err = test.CombinedOutput()
	if err != nil {
		t.Fatalf("example tests failed: %v\n%s", err, string(b))
	}
}
