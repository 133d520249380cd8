package translate

import (
	"strconv"
	"strings"

	"github.com/quillpress/brandsass/pkg/types"
)

// TypographyBundle generates the typography layer for a brand. Roles are
// resolved most specific first, each resolved attribute is translated into
// its target variables through the translation table, remote font imports
// accumulate into the Uses section, and file-backed fonts emit @font-face
// rules with corrected paths.
func TypographyBundle(brand *types.Brand, key, projectRoot string) (types.SassBundle, error) {
	bundle := types.SassBundle{Key: key}
	if !brand.HasTypography() {
		return bundle, nil
	}
	typ := brand.Typography

	var imports importSet
	var decls []string
	var faces []string
	facesDone := make(map[string]bool)

	for _, role := range types.RolePriority {
		spec := typ.Role(role)
		if spec == nil {
			continue
		}

		attrs, err := resolveRole(brand, spec)
		if err != nil {
			return types.SassBundle{}, err
		}

		if family := spec.Family; family != "" {
			rf, err := resolveFontFamily(family, typ.Fonts)
			if err != nil {
				return types.SassBundle{}, err
			}
			attrs[attrFamily] = rf.family
			imports.addAll(rf.imports)

			if !facesDone[rf.family] {
				facesDone[rf.family] = true
				rules, err := fileFontFaces(rf.family, collectFamily(family, typ.Fonts), projectRoot, brand.Dir)
				if err != nil {
					return types.SassBundle{}, err
				}
				if rules != "" {
					faces = append(faces, rules)
				}
			}
		}

		entries, err := tableFor(role)
		if err != nil {
			return types.SassBundle{}, err
		}
		for _, entry := range entries {
			value, ok := attrs[entry.attr]
			if !ok {
				continue
			}
			for _, target := range entry.targets {
				decls = append(decls, varDecl(target, value))
			}
		}
	}

	bundle.Uses = annotate("brand / typography", strings.Join(imports.items, "\n"))
	bundle.Defaults = annotate("brand / typography", strings.Join(decls, "\n"))
	bundle.Rules = annotate("brand / typography", strings.Join(faces, "\n"))
	return bundle, nil
}

// resolveRole copies the attributes present on a role specification into
// the resolved-attribute set. Colors pass through brand color resolution,
// weight keywords resolve to their numeric values, and everything else is
// copied verbatim. The family is handled separately by the resolver chain.
func resolveRole(brand *types.Brand, spec *types.FontRole) (map[string]string, error) {
	attrs := make(map[string]string)
	if spec.Size != "" {
		attrs[attrSize] = spec.Size
	}
	if spec.Weight != "" {
		weight, err := ResolveFontWeight(spec.Weight)
		if err != nil {
			return nil, err
		}
		attrs[attrWeight] = strconv.Itoa(weight)
	}
	if spec.Style != "" {
		attrs[attrStyle] = spec.Style
	}
	if spec.LineHeight != "" {
		attrs[attrLineHeight] = spec.LineHeight
	}
	if spec.Decoration != "" {
		attrs[attrDecoration] = spec.Decoration
	}
	if spec.Color != "" {
		attrs[attrColor] = brand.Color.Resolve(spec.Color)
	}
	if spec.BackgroundColor != "" {
		attrs[attrBackgroundColor] = brand.Color.Resolve(spec.BackgroundColor)
	}
	return attrs, nil
}
