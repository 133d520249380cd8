// Package brandsass exposes the public entry points of the brand-to-SCSS
// translator. A Resolver supplies the brand snapshot; the two entry points
// differ only in how the produced bundles are tagged for the style
// compilation step.
package brandsass

import (
	"github.com/quillpress/brandsass/internal/translate"
	"github.com/quillpress/brandsass/pkg/types"
)

// Version is the brandsass release version.
const Version = "v0.3.0"

// Resolver supplies the resolved brand for a document. An empty file name
// asks for the project's default brand document. A nil brand with a nil
// error means the document declares no brand customization at all.
type Resolver interface {
	ResolveBrand(fileName string) (*types.Brand, error)
}

// BootstrapBundles produces the bundle layers for bootstrap-based HTML
// output. Every bundle is tagged with the bootstrap namespace dependency so
// the compilation step loads the framework variables first. An absent brand
// yields an empty list.
func BootstrapBundles(r Resolver, fileName, key, projectRoot string, nameMap map[string]string) ([]types.SassBundle, error) {
	brand, err := r.ResolveBrand(fileName)
	if err != nil {
		return nil, err
	}
	return translate.Bundles(brand, translate.Options{
		Key:         key,
		Dependency:  types.DependencyBootstrap,
		Framework:   "bootstrap",
		NameMap:     nameMap,
		ProjectRoot: projectRoot,
	})
}

// ThemeBundles produces the bundle layers for slide-deck theming, which
// defines its own variable namespace and therefore takes no dependency tag.
// An absent brand yields an empty list.
func ThemeBundles(r Resolver, fileName, key, projectRoot string, nameMap map[string]string) ([]types.SassBundle, error) {
	brand, err := r.ResolveBrand(fileName)
	if err != nil {
		return nil, err
	}
	return translate.Bundles(brand, translate.Options{
		Key:         key,
		Framework:   "revealjs",
		NameMap:     nameMap,
		ProjectRoot: projectRoot,
	})
}

// ResolveFontFamily resolves a family through the provider chain (google,
// then bunny, then the literal name) and returns the effective family plus
// any remote import statements it needs.
func ResolveFontFamily(family string, fonts []types.FontDescriptor) (string, []string, error) {
	return translate.ResolveFamily(family, fonts)
}

// FontWeight resolves a weight keyword to its numeric value. Numeric input
// passes through unchanged.
func FontWeight(weight string) (int, error) {
	return translate.ResolveFontWeight(weight)
}

// FontFormat classifies a font file by extension for @font-face emission.
func FontFormat(file string) (string, error) {
	return translate.FontFormat(file)
}
