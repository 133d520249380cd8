// CLI integration tests: build the brandsass binary once per run and drive
// it against fixture projects, asserting output and exit codes.
package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// brandsassBin is the path to the built brandsass binary.
var brandsassBin string

func TestMain(m *testing.M) {
	moduleRoot, err := findModuleRoot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "find module root: %v\n", err)
		os.Exit(1)
	}

	tmpDir, err := os.MkdirTemp("", "brandsass-test-*")
	if err != nil {
		fmt.Fprintf(os.Stderr, "create temp dir: %v\n", err)
		os.Exit(1)
	}
	brandsassBin = filepath.Join(tmpDir, "brandsass")

	cmd := exec.Command("go", "build", "-o", brandsassBin, "./cmd/brandsass")
	cmd.Dir = moduleRoot
	if output, err := cmd.CombinedOutput(); err != nil {
		fmt.Fprintf(os.Stderr, "build brandsass: %v\n%s", err, output)
		os.Exit(1)
	}

	code := m.Run()

	os.RemoveAll(tmpDir)
	os.Exit(code)
}

// findModuleRoot walks up from the working directory looking for go.mod.
func findModuleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// cliResult holds the outcome of one brandsass invocation.
type cliResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// runCLI executes the brandsass binary against a project directory.
func runCLI(t *testing.T, projectRoot string, args ...string) cliResult {
	t.Helper()

	allArgs := append([]string{"--project-root", projectRoot}, args...)
	cmd := exec.Command(brandsassBin, allArgs...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	exitCode := 0
	if err != nil {
		exitErr, ok := err.(*exec.ExitError)
		if !ok {
			t.Fatalf("run brandsass: %v", err)
		}
		exitCode = exitErr.ExitCode()
	}

	return cliResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}
}

// writeProject creates an isolated project directory holding the given
// files, keyed by path relative to the project root.
func writeProject(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}

const colorBrandYAML = `
color:
  palette:
    primary: "#ff0000"
`

func TestCLI_GenerateHTML(t *testing.T) {
	root := writeProject(t, map[string]string{"_brand.yml": colorBrandYAML})

	result := runCLI(t, root, "generate", "--target", "html")

	require.Equal(t, 0, result.ExitCode, "stderr: %s", result.Stderr)
	assert.Contains(t, result.Stdout, "/*-- scss:defaults --*/")
	assert.Contains(t, result.Stdout, "$brand-primary: #ff0000 !default;")
	assert.Contains(t, result.Stdout, "--brand-primary: #ff0000;")
}

func TestCLI_GenerateJSON(t *testing.T) {
	root := writeProject(t, map[string]string{"_brand.yml": colorBrandYAML})

	result := runCLI(t, root, "generate", "--target", "html", "--key", "site", "--json")

	require.Equal(t, 0, result.ExitCode, "stderr: %s", result.Stderr)
	var bundles []struct {
		Key        string
		Dependency string
		Defaults   string
	}
	require.NoError(t, json.Unmarshal([]byte(result.Stdout), &bundles))
	require.Len(t, bundles, 1)
	assert.Equal(t, "site", bundles[0].Key)
	assert.Equal(t, "bootstrap", bundles[0].Dependency)
	assert.Contains(t, bundles[0].Defaults, "$brand-primary")
}

func TestCLI_GenerateOutFile(t *testing.T) {
	root := writeProject(t, map[string]string{"_brand.yml": colorBrandYAML})
	outFile := filepath.Join(root, "brand.scss")

	result := runCLI(t, root, "generate", "--target", "revealjs", "--out", outFile)

	require.Equal(t, 0, result.ExitCode, "stderr: %s", result.Stderr)
	assert.Empty(t, result.Stdout, "output goes to the file, not stdout")
	data, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "$brand-primary: #ff0000 !default;")
}

func TestCLI_GenerateUnknownTarget(t *testing.T) {
	root := writeProject(t, map[string]string{"_brand.yml": colorBrandYAML})

	result := runCLI(t, root, "generate", "--target", "latex")

	assert.Equal(t, 1, result.ExitCode)
	assert.Contains(t, result.Stderr, "unknown target")
}

func TestCLI_CheckOK(t *testing.T) {
	root := writeProject(t, map[string]string{"_brand.yml": `
color:
  palette:
    primary: "#ff0000"
typography:
  base:
    family: Arial
    weight: semi-bold
`})

	result := runCLI(t, root, "check")

	require.Equal(t, 0, result.ExitCode, "stderr: %s", result.Stderr)
	assert.Contains(t, result.Stdout, "brand document OK")
}

func TestCLI_CheckNoBrand(t *testing.T) {
	result := runCLI(t, t.TempDir(), "check")

	assert.Equal(t, 0, result.ExitCode, "absent brand is not an error")
	assert.Contains(t, result.Stdout, "no brand document found")
}

func TestCLI_CheckUnknownWeight(t *testing.T) {
	root := writeProject(t, map[string]string{"_brand.yml": `
typography:
  headings:
    weight: heavy
`})

	result := runCLI(t, root, "check")

	assert.Equal(t, 1, result.ExitCode)
	assert.Contains(t, result.Stderr, "heavy", "error names the unrecognized keyword")
}

func TestCLI_FontsJSON(t *testing.T) {
	root := writeProject(t, map[string]string{"_brand.yml": `
typography:
  fonts:
    - family: Open Sans
      source: google
      weight: [400, 700]
  base:
    family: Open Sans
`})

	result := runCLI(t, root, "fonts", "--json")

	require.Equal(t, 0, result.ExitCode, "stderr: %s", result.Stderr)
	var roles []struct {
		Role    string   `json:"role"`
		Family  string   `json:"family"`
		Weights []int    `json:"weights"`
		Imports []string `json:"imports"`
	}
	require.NoError(t, json.Unmarshal([]byte(result.Stdout), &roles))
	require.Len(t, roles, 1)
	assert.Equal(t, "base", roles[0].Role)
	assert.Equal(t, "Open Sans", roles[0].Family)
	assert.Equal(t, []int{400, 700}, roles[0].Weights)
	require.Len(t, roles[0].Imports, 1)
	assert.Contains(t, roles[0].Imports[0], "fonts.googleapis.com/css2?family=Open+Sans:wght@400;700")
}

func TestCLI_ConfigFileDefaults(t *testing.T) {
	root := writeProject(t, map[string]string{
		"_brand.yml":     colorBrandYAML,
		"_brandsass.yml": "target: revealjs\nkey: deck\n",
	})

	result := runCLI(t, root, "generate", "--json")

	require.Equal(t, 0, result.ExitCode, "stderr: %s", result.Stderr)
	var bundles []struct {
		Key        string
		Dependency string
	}
	require.NoError(t, json.Unmarshal([]byte(result.Stdout), &bundles))
	require.Len(t, bundles, 1)
	assert.Equal(t, "deck", bundles[0].Key, "config supplies the key when the flag is unset")
	assert.Empty(t, bundles[0].Dependency, "config target revealjs produces untagged bundles")
}

func TestCLI_ConfigFileFlagWins(t *testing.T) {
	root := writeProject(t, map[string]string{
		"_brand.yml":     colorBrandYAML,
		"_brandsass.yml": "target: revealjs\n",
	})

	result := runCLI(t, root, "generate", "--target", "html", "--json")

	require.Equal(t, 0, result.ExitCode, "stderr: %s", result.Stderr)
	var bundles []struct{ Dependency string }
	require.NoError(t, json.Unmarshal([]byte(result.Stdout), &bundles))
	require.Len(t, bundles, 1)
	assert.Equal(t, "bootstrap", bundles[0].Dependency, "explicit flag overrides the config")
}

func TestCLI_Version(t *testing.T) {
	result := runCLI(t, t.TempDir(), "--version")

	assert.Equal(t, 0, result.ExitCode)
	assert.Contains(t, result.Stdout, "v0.3")
}
