package translate

import (
	"sort"
	"strings"

	"github.com/quillpress/brandsass/pkg/types"
)

// brandNamespace prefixes every palette-derived variable and custom
// property so generated names cannot collide with framework variables.
const brandNamespace = "brand-"

// ColorBundle generates the color layer for a brand: one variable and one
// custom property per palette entry, one variable per top-level named
// color, and one variable per name-map alias that resolves to a value other
// than its own key. Every variable carries !default so an earlier-loaded
// stylesheet keeps precedence.
func ColorBundle(brand *types.Brand, key string, nameMap map[string]string) types.SassBundle {
	bundle := types.SassBundle{Key: key}
	if brand == nil || brand.Color == nil {
		return bundle
	}
	color := brand.Color

	var defaults []string
	var props []string
	for _, name := range sortedKeys(color.Palette) {
		safe := brandNamespace + sanitizeName(name)
		defaults = append(defaults, varDecl(safe, color.Palette[name]))
		props = append(props, customProp(safe, color.Palette[name]))
	}
	for _, name := range sortedKeys(color.Named) {
		// Named colors may reference palette entries or each other;
		// emit the fully resolved value.
		defaults = append(defaults, varDecl(name, color.Resolve(name)))
	}
	for _, alias := range sortedKeys(nameMap) {
		target := nameMap[alias]
		resolved := color.Resolve(target)
		if resolved == target {
			// Self-resolving alias: nothing overrides the framework value.
			continue
		}
		defaults = append(defaults, varDecl(alias, resolved))
	}

	bundle.Defaults = annotate("brand / color", strings.Join(defaults, "\n"))
	if len(props) > 0 {
		bundle.Rules = annotate("brand / color", rootRule(props))
	}
	return bundle
}

// sortedKeys returns map keys in lexical order so generated text is stable
// across runs.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
