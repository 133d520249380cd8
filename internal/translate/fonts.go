// Font family resolution for the typography bundle. Resolution tries the
// remote providers in a fixed order (google, then bunny) and falls back to
// the literal family name; each resolver returns nil when its provider does
// not apply, so the chain short-circuits on the first match.
package translate

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/quillpress/brandsass/internal/paths"
	"github.com/quillpress/brandsass/pkg/types"
)

// resolvedFont is the outcome of resolving one role's font family: the
// effective family name plus any remote import statements it needs.
type resolvedFont struct {
	family  string
	imports []string
}

// fontResolver attempts provider-specific resolution of a family. A nil
// result with a nil error means "provider does not apply, try the next".
type fontResolver func(family string, fonts []types.FontDescriptor) (*resolvedFont, error)

// resolveFontFamily runs the resolver chain for a family and always
// succeeds with at least the literal family name.
func resolveFontFamily(family string, fonts []types.FontDescriptor) (*resolvedFont, error) {
	for _, resolve := range []fontResolver{resolveGoogleFont, resolveBunnyFont} {
		rf, err := resolve(family, fonts)
		if err != nil {
			return nil, err
		}
		if rf != nil {
			return rf, nil
		}
	}
	return &resolvedFont{family: family}, nil
}

// ResolveFamily resolves a family through the provider chain and returns
// the effective family name plus any remote import statements.
func ResolveFamily(family string, fonts []types.FontDescriptor) (string, []string, error) {
	rf, err := resolveFontFamily(family, fonts)
	if err != nil {
		return "", nil, err
	}
	return rf.family, rf.imports, nil
}

// collectFamily gathers the descriptors that apply to a family. A
// descriptor with no family of its own defaults to the role's family.
func collectFamily(family string, fonts []types.FontDescriptor) []types.FontDescriptor {
	var out []types.FontDescriptor
	for _, d := range fonts {
		if d.Family == family || d.Family == "" {
			out = append(out, d)
		}
	}
	return out
}

// resolvedFamily checks that every collected descriptor agrees on the
// family name after defaulting.
func resolvedFamily(family string, descriptors []types.FontDescriptor) (string, error) {
	resolved := family
	for _, d := range descriptors {
		name := d.Family
		if name == "" {
			name = family
		}
		if resolved == "" {
			resolved = name
		}
		if name != resolved {
			return "", fmt.Errorf("%w: %q vs %q", types.ErrFamilyMismatch, resolved, name)
		}
	}
	return resolved, nil
}

// resolveGoogleFont resolves a family against Google Fonts. Every collected
// descriptor must declare source "google"; a descriptor with no source at
// all disqualifies the provider rather than defaulting to it.
func resolveGoogleFont(family string, fonts []types.FontDescriptor) (*resolvedFont, error) {
	descriptors := collectFamily(family, fonts)
	if len(descriptors) == 0 {
		return nil, nil
	}
	for _, d := range descriptors {
		if d.Source != types.FontSourceGoogle {
			return nil, nil
		}
	}
	resolved, err := resolvedFamily(family, descriptors)
	if err != nil {
		return nil, err
	}

	var imports importSet
	for _, d := range descriptors {
		url, err := googleImportURL(resolved, d)
		if err != nil {
			return nil, err
		}
		imports.add(url)
	}
	return &resolvedFont{family: resolved, imports: imports.items}, nil
}

// resolveBunnyFont resolves a family against Bunny Fonts. Unlike the google
// path a missing source field is acceptable here, which makes bunny the
// effective default provider for undeclared fonts.
func resolveBunnyFont(family string, fonts []types.FontDescriptor) (*resolvedFont, error) {
	descriptors := collectFamily(family, fonts)
	if len(descriptors) == 0 {
		return nil, nil
	}
	for _, d := range descriptors {
		if d.Source != types.FontSourceBunny && d.Source != "" {
			return nil, nil
		}
	}
	resolved, err := resolvedFamily(family, descriptors)
	if err != nil {
		return nil, err
	}
	if resolved == "" {
		return nil, fmt.Errorf("%w: bunny font list entry", types.ErrMissingFontFamily)
	}

	var imports importSet
	for _, d := range descriptors {
		url, err := bunnyImportURL(resolved, d)
		if err != nil {
			return nil, err
		}
		imports.add(url)
	}
	return &resolvedFont{family: resolved, imports: imports.items}, nil
}

// googleImportURL builds one css2 @import statement for a descriptor. When
// the descriptor requests an italic style the axes are the full style by
// weight cross product; otherwise weights only.
func googleImportURL(family string, d types.FontDescriptor) (string, error) {
	weights, err := resolveWeights(d.Weights)
	if err != nil {
		return "", err
	}

	urlFamily := strings.ReplaceAll(family, " ", "+")
	var axes []string
	if d.Italic() {
		for _, ital := range []int{0, 1} {
			for _, w := range weights {
				axes = append(axes, fmt.Sprintf("%d,%d", ital, w))
			}
		}
	}

	display := d.Display
	if display == "" {
		display = types.FontDisplayDefault
	}

	var spec string
	if len(axes) > 0 {
		spec = fmt.Sprintf("%s:ital,wght@%s", urlFamily, strings.Join(axes, ";"))
	} else {
		spec = fmt.Sprintf("%s:wght@%s", urlFamily, joinInts(weights, ";"))
	}
	return fmt.Sprintf("@import url(%q);",
		fmt.Sprintf("https://fonts.googleapis.com/css2?family=%s&display=%s", spec, display)), nil
}

// bunnyImportURL builds one @import statement against the Bunny Fonts API,
// which takes lowercase hyphenated family names and "i"-suffixed italic
// weights.
func bunnyImportURL(family string, d types.FontDescriptor) (string, error) {
	weights, err := resolveWeights(d.Weights)
	if err != nil {
		return "", err
	}

	urlFamily := strings.ReplaceAll(strings.ToLower(family), " ", "-")
	var axes []string
	for _, w := range weights {
		axes = append(axes, strconv.Itoa(w))
	}
	if d.Italic() {
		for _, w := range weights {
			axes = append(axes, strconv.Itoa(w)+"i")
		}
	}

	display := d.Display
	if display == "" {
		display = types.FontDisplayDefault
	}
	return fmt.Sprintf("@import url(%q);",
		fmt.Sprintf("https://fonts.bunny.net/css?family=%s:%s&display=%s",
			urlFamily, strings.Join(axes, ","), display)), nil
}

// importSet accumulates import statements in first-seen order, collapsing
// duplicates. It is function-local per translation pass so concurrent
// translations for different documents never share state.
type importSet struct {
	seen  map[string]bool
	items []string
}

func (s *importSet) add(imp string) {
	if s.seen == nil {
		s.seen = make(map[string]bool)
	}
	if s.seen[imp] {
		return
	}
	s.seen[imp] = true
	s.items = append(s.items, imp)
}

func (s *importSet) addAll(imports []string) {
	for _, imp := range imports {
		s.add(imp)
	}
}

// fontFormats maps file extensions to the format names the src descriptor
// of an @font-face rule understands.
var fontFormats = map[string]string{
	".ttc":   "collection",
	".otc":   "collection",
	".woff":  "woff",
	".woff2": "woff2",
	".ttf":   "truetype",
	".otf":   "opentype",
	".svg":   "svg",
	".eot":   "embedded-opentype",
}

// FontFormat classifies a font file by extension. An unrecognized or
// missing extension is a hard failure naming the file.
func FontFormat(file string) (string, error) {
	ext := strings.ToLower(filepath.Ext(file))
	if format, ok := fontFormats[ext]; ok {
		return format, nil
	}
	return "", fmt.Errorf("%w: %q", types.ErrUnknownFontFormat, file)
}

// fileFontFaces renders @font-face rules for the file-backed descriptors of
// a family. Paths are corrected from brand-document-relative to
// project-root-relative before emission.
func fileFontFaces(family string, descriptors []types.FontDescriptor, projectRoot, brandDir string) (string, error) {
	var rules []string
	for _, d := range descriptors {
		if d.Source != types.FontSourceFile || len(d.Files) == 0 {
			continue
		}

		var sources []string
		for _, f := range d.Files {
			format, err := FontFormat(f)
			if err != nil {
				return "", err
			}
			corrected := paths.CorrectFontPath(projectRoot, brandDir, f)
			sources = append(sources, fmt.Sprintf("url(%q) format(%q)", corrected, format))
		}

		var sb strings.Builder
		sb.WriteString("@font-face {\n")
		fmt.Fprintf(&sb, "  font-family: %q;\n", family)
		if d.Italic() {
			sb.WriteString("  font-style: italic;\n")
		}
		if len(d.Weights) > 0 {
			weights, err := resolveWeights(d.Weights)
			if err != nil {
				return "", err
			}
			fmt.Fprintf(&sb, "  font-weight: %s;\n", joinInts(weights, " "))
		}
		fmt.Fprintf(&sb, "  src: %s;\n", strings.Join(sources, ", "))
		sb.WriteString("}")
		rules = append(rules, sb.String())
	}
	return strings.Join(rules, "\n"), nil
}

// joinInts renders ints joined by a separator.
func joinInts(ns []int, sep string) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, sep)
}
