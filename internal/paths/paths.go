// Package paths resolves project-root and brand-document-relative file
// locations for the translator and the CLI.
package paths

import (
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Brand document file names probed by FindProjectRoot, in order.
var brandFileNames = []string{"_brand.yml", "_brand.yaml"}

// DefaultBrandFile is the canonical brand document name at the project root.
const DefaultBrandFile = "_brand.yml"

// IsAbsoluteURL reports whether a font path is a URL rather than a file
// path. URLs pass through path correction unchanged.
func IsAbsoluteURL(p string) bool {
	for _, prefix := range []string{"http://", "https://", "data:"} {
		if strings.HasPrefix(p, prefix) {
			return true
		}
	}
	return false
}

// CorrectFontPath rewrites a font file path written relative to the brand
// document so that it resolves correctly when the compiled stylesheet is
// evaluated relative to the project root.
//
// Absolute URLs pass through unchanged. A leading separator marks a path
// that is already project-root-relative; the separator is stripped. Any
// other path is joined onto the relative path from the project root to the
// brand document's directory.
func CorrectFontPath(projectRoot, brandDir, p string) string {
	if IsAbsoluteURL(p) {
		return p
	}
	if strings.HasPrefix(p, "/") {
		return strings.TrimPrefix(p, "/")
	}
	rel, err := filepath.Rel(projectRoot, brandDir)
	if err != nil || rel == "." {
		return p
	}
	return path.Join(filepath.ToSlash(rel), p)
}

// FindProjectRoot walks upward from start looking for a brand document or a
// .git directory. When neither marker exists the start directory itself is
// the root.
func FindProjectRoot(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}
	for {
		for _, name := range brandFileNames {
			if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
				return dir, nil
			}
		}
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return filepath.Abs(start)
}

// BrandFilePath returns the path of the brand document inside a project
// root, probing the recognized file names. The boolean reports whether a
// document exists.
func BrandFilePath(projectRoot string) (string, bool) {
	for _, name := range brandFileNames {
		p := filepath.Join(projectRoot, name)
		if _, err := os.Stat(p); err == nil {
			return p, true
		}
	}
	return filepath.Join(projectRoot, DefaultBrandFile), false
}
