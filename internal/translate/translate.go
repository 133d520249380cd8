// Package translate turns a resolved brand document into ordered SCSS
// bundle layers: framework defaults first, then colors, then typography.
// The translator is a pure function over the brand snapshot; it holds no
// state between invocations.
package translate

import (
	"github.com/quillpress/brandsass/pkg/types"
)

// Options selects the target surface for one translation pass.
type Options struct {
	Key         string            // bundle key identifying the target surface
	Dependency  string            // dependency tag stamped on every bundle; empty for self-contained targets
	Framework   string            // framework whose defaults table applies (bootstrap, revealjs)
	NameMap     map[string]string // format-specific color alias -> canonical color key
	ProjectRoot string            // project root for font path correction
}

// Bundles produces the applicable bundle layers for a brand. Each layer is
// present only when the brand declares the matching section; a nil brand
// yields an empty list, never an error. The returned order is the global
// override-ordering contract: defaults, color, typography.
func Bundles(brand *types.Brand, opts Options) ([]types.SassBundle, error) {
	if brand == nil {
		return nil, nil
	}

	var bundles []types.SassBundle
	if brand.FrameworkDefaults(opts.Framework) != nil {
		bundles = append(bundles, DefaultsBundle(brand, opts.Key, opts.Framework))
	}
	if brand.HasColor() {
		bundles = append(bundles, ColorBundle(brand, opts.Key, opts.NameMap))
	}
	if brand.HasTypography() {
		typography, err := TypographyBundle(brand, opts.Key, opts.ProjectRoot)
		if err != nil {
			return nil, err
		}
		bundles = append(bundles, typography)
	}

	for i := range bundles {
		bundles[i].Dependency = opts.Dependency
	}
	return bundles, nil
}
