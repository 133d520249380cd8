// Fonts command prints the resolved font families, weights, imports, and
// file formats per typography role.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quillpress/brandsass/pkg/brandsass"
	"github.com/quillpress/brandsass/pkg/types"
)

var fontsCmd = &cobra.Command{
	Use:   "fonts",
	Short: "Show resolved font families and import URLs per role",
	Args:  cobra.NoArgs,
	RunE:  runFonts,
}

// fontFile is the JSON shape for one classified font file.
type fontFile struct {
	Path   string `json:"path"`
	Format string `json:"format"`
}

// roleFonts is the JSON shape for one resolved role.
type roleFonts struct {
	Role    string     `json:"role"`
	Family  string     `json:"family"`
	Weights []int      `json:"weights,omitempty"`
	Imports []string   `json:"imports,omitempty"`
	Files   []fontFile `json:"files,omitempty"`
}

func runFonts(cmd *cobra.Command, args []string) error {
	resolver, _, err := newLoader(cmd)
	if err != nil {
		return fmt.Errorf("resolve project root: %w", err)
	}

	brand, err := resolver.ResolveBrand(flagBrandFile)
	if err != nil {
		return err
	}
	if brand == nil || brand.Typography == nil {
		fmt.Println("no typography declared")
		return nil
	}

	var results []roleFonts
	for _, role := range types.RolePriority {
		spec := brand.Typography.Role(role)
		if spec == nil || spec.Family == "" {
			continue
		}
		family, imports, err := brandsass.ResolveFontFamily(spec.Family, brand.Typography.Fonts)
		if err != nil {
			return err
		}
		entry := roleFonts{Role: role, Family: family, Imports: imports}

		for _, d := range brand.Typography.Fonts {
			if d.Family != spec.Family && d.Family != "" {
				continue
			}
			for _, w := range d.Weights {
				n, err := brandsass.FontWeight(w)
				if err != nil {
					return err
				}
				entry.Weights = append(entry.Weights, n)
			}
			for _, f := range d.Files {
				format, err := brandsass.FontFormat(f)
				if err != nil {
					return err
				}
				entry.Files = append(entry.Files, fontFile{Path: f, Format: format})
			}
		}
		results = append(results, entry)
	}

	if flagJSON {
		data, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal fonts: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	for _, r := range results {
		fmt.Printf("%s: %s\n", r.Role, r.Family)
		for _, imp := range r.Imports {
			fmt.Printf("  %s\n", imp)
		}
		for _, f := range r.Files {
			fmt.Printf("  %s (%s)\n", f.Path, f.Format)
		}
	}
	return nil
}
