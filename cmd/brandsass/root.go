// Root command for the brandsass CLI.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/quillpress/brandsass/internal/loader"
	"github.com/quillpress/brandsass/internal/paths"
	"github.com/quillpress/brandsass/pkg/brandsass"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagProjectRoot string
	flagBrandFile   string
	flagJSON        bool
)

var rootCmd = &cobra.Command{
	Use:   "brandsass",
	Short: "Translate a brand document into SCSS bundle layers",
	Long: `Brandsass reads a brand-definition document (colors, typography,
fonts, framework defaults) and generates the layered SCSS variable
bundles consumed by a document-rendering pipeline.`,
	Version:       brandsass.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagProjectRoot, "project-root", "", "project root directory (default: discovered from CWD)")
	rootCmd.PersistentFlags().StringVar(&flagBrandFile, "brand", "", "brand document path, relative to the project root (default: _brand.yml)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(fontsCmd)
}

// resolveProjectRoot returns the project root from the flag or by walking
// up from the working directory looking for a brand document or .git.
func resolveProjectRoot() (string, error) {
	if flagProjectRoot != "" {
		return flagProjectRoot, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return paths.FindProjectRoot(cwd)
}

// newLoader builds the brand resolver for the resolved project root,
// after folding any per-project config into the unset flags.
func newLoader(cmd *cobra.Command) (*loader.Loader, string, error) {
	root, err := resolveProjectRoot()
	if err != nil {
		return nil, "", err
	}
	cfg, err := loadConfig(root)
	if err != nil {
		return nil, "", err
	}
	applyConfig(cfg, cmd)
	return loader.New(root), root, nil
}
