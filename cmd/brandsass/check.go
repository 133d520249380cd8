// Check command validates the brand document without generating output.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quillpress/brandsass/pkg/brandsass"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the brand document",
	Long: `Check loads the brand document and runs a full translation pass
for both target surfaces, reporting the first problem found: unknown
typography roles, unrecognized weight keywords, inconsistent font
families, or unclassifiable font files.`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	resolver, root, err := newLoader(cmd)
	if err != nil {
		return fmt.Errorf("resolve project root: %w", err)
	}

	brand, err := resolver.ResolveBrand(flagBrandFile)
	if err != nil {
		return err
	}
	if brand == nil {
		fmt.Println("no brand document found; nothing to check")
		return nil
	}

	if _, err := brandsass.BootstrapBundles(resolver, flagBrandFile, "check", root, nil); err != nil {
		return err
	}
	if _, err := brandsass.ThemeBundles(resolver, flagBrandFile, "check", root, nil); err != nil {
		return err
	}

	fmt.Println("brand document OK")
	return nil
}
