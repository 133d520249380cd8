package translate

import (
	"strings"

	"github.com/quillpress/brandsass/pkg/types"
)

// bootstrapColors lists the color names bootstrap itself defines. A palette
// entry with one of these names overrides the framework color directly.
var bootstrapColors = []string{
	"blue", "indigo", "purple", "pink", "red", "orange",
	"yellow", "green", "teal", "cyan", "black", "white",
}

// versionKey is reserved in the defaults table to select the framework
// version and is never emitted as a variable.
const versionKey = "version"

// DefaultsBundle generates the framework-defaults layer: palette entries
// matching framework color names first, then the remaining raw key/value
// defaults verbatim. The orchestration prepends this bundle so downstream
// stylesheets see brand defaults before their own computed variables;
// !default still lets explicit values elsewhere win.
func DefaultsBundle(brand *types.Brand, key, framework string) types.SassBundle {
	bundle := types.SassBundle{Key: key}
	defaults := brand.FrameworkDefaults(framework)
	if defaults == nil {
		return bundle
	}

	var decls []string
	if framework == "bootstrap" && brand.Color != nil {
		for _, name := range bootstrapColors {
			if v, ok := brand.Color.Palette[name]; ok {
				decls = append(decls, varDecl(name, v))
			}
		}
	}
	for _, name := range sortedKeys(defaults) {
		if name == versionKey {
			continue
		}
		decls = append(decls, varDecl(name, defaults[name]))
	}

	bundle.Defaults = annotate("brand / defaults / "+framework, strings.Join(decls, "\n"))
	return bundle
}
