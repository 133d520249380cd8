// Generate command produces the SCSS bundle layers for a target surface.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quillpress/brandsass/pkg/brandsass"
	"github.com/quillpress/brandsass/pkg/types"
)

var (
	flagTarget string
	flagKey    string
	flagOut    string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate SCSS bundles from the brand document",
	Long: `Generate translates the brand document into ordered SCSS bundle
layers for the selected target surface.

Valid targets: html (bootstrap-based output), revealjs (slide-deck theme)

Example:
  brandsass generate --target html
  brandsass generate --target revealjs --out theme-brand.scss
  brandsass generate --target html --json`,
	Args: cobra.NoArgs,
}

func init() {
	generateCmd.RunE = runGenerate
	generateCmd.Flags().StringVar(&flagTarget, "target", "html", "target surface: html or revealjs")
	generateCmd.Flags().StringVar(&flagKey, "key", "brand", "bundle key identifying the target surface")
	generateCmd.Flags().StringVar(&flagOut, "out", "", "output file (default: stdout)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	resolver, root, err := newLoader(cmd)
	if err != nil {
		return fmt.Errorf("resolve project root: %w", err)
	}

	var bundles []types.SassBundle
	switch flagTarget {
	case "html":
		bundles, err = brandsass.BootstrapBundles(resolver, flagBrandFile, flagKey, root, nil)
	case "revealjs":
		bundles, err = brandsass.ThemeBundles(resolver, flagBrandFile, flagKey, root, nil)
	default:
		return fmt.Errorf("unknown target %q (valid: html, revealjs)", flagTarget)
	}
	if err != nil {
		return fmt.Errorf("generate bundles: %w", err)
	}

	var output string
	if flagJSON {
		data, err := json.MarshalIndent(bundles, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal bundles: %w", err)
		}
		output = string(data) + "\n"
	} else {
		output = brandsass.RenderAll(bundles)
	}

	if flagOut == "" {
		fmt.Print(output)
		return nil
	}
	if err := os.WriteFile(flagOut, []byte(output), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
