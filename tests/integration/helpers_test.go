// Package integration provides shared helpers for the end-to-end brand
// translation tests.
package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/quillpress/brandsass/internal/loader"
)

// setupProject writes a brand document into an isolated project directory
// and returns a loader rooted there. Each test gets its own project so no
// state is shared between cases.
func setupProject(t *testing.T, brandYAML string) (*loader.Loader, string) {
	t.Helper()
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "_brand.yml"), []byte(brandYAML), 0o644); err != nil {
		t.Fatalf("write brand document: %v", err)
	}
	return loader.New(root), root
}
