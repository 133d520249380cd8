// Package loader reads a brand-definition YAML document and normalizes it
// into the types.Brand snapshot consumed by the translator. It implements
// the brandsass.Resolver interface.
package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/quillpress/brandsass/internal/paths"
	"github.com/quillpress/brandsass/pkg/types"
)

// Loader resolves brand documents for one project.
type Loader struct {
	ProjectRoot string
}

// New creates a Loader rooted at projectRoot.
func New(projectRoot string) *Loader {
	return &Loader{ProjectRoot: projectRoot}
}

// ResolveBrand reads and normalizes a brand document. An empty fileName
// selects the project's default brand document. A missing document is not
// an error: it resolves to a nil brand, meaning "no brand customization to
// apply". A malformed document is an error.
func (l *Loader) ResolveBrand(fileName string) (*types.Brand, error) {
	file := fileName
	if file == "" {
		p, ok := paths.BrandFilePath(l.ProjectRoot)
		if !ok {
			return nil, nil
		}
		file = p
	} else if !filepath.IsAbs(file) {
		file = filepath.Join(l.ProjectRoot, file)
	}

	data, err := os.ReadFile(file)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read brand document %q: %w", file, err)
	}

	// Palette and defaults names are case-sensitive, so the document is
	// decoded with yaml.v3, which preserves map key case.
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse brand document %q: %w", file, err)
	}

	brand := &types.Brand{Dir: filepath.Dir(file)}

	if raw, ok := doc["color"]; ok && raw != nil {
		color, err := parseColor(raw)
		if err != nil {
			return nil, err
		}
		brand.Color = color
	}
	if raw, ok := doc["typography"]; ok && raw != nil {
		typography, err := parseTypography(raw)
		if err != nil {
			return nil, err
		}
		brand.Typography = typography
	}
	if raw, ok := doc["defaults"]; ok && raw != nil {
		defaults, err := parseDefaults(raw)
		if err != nil {
			return nil, err
		}
		brand.Defaults = defaults
	}

	return brand, nil
}

// parseColor normalizes the color section: a "palette" sub-map of raw
// colors plus top-level semantic color names.
func parseColor(raw any) (*types.BrandColor, error) {
	section, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("color section must be a mapping, got %T", raw)
	}

	color := &types.BrandColor{
		Palette: make(map[string]string),
		Named:   make(map[string]string),
	}
	for name, value := range section {
		if name == "palette" {
			palette, ok := value.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("color palette must be a mapping, got %T", value)
			}
			for k, v := range palette {
				color.Palette[k] = asString(v)
			}
			continue
		}
		color.Named[name] = asString(value)
	}
	return color, nil
}

// parseTypography normalizes the typography section: the "fonts" list plus
// one entry per role. A bare-string role is a family-only specification.
func parseTypography(raw any) (*types.BrandTypography, error) {
	section, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("typography section must be a mapping, got %T", raw)
	}

	typography := &types.BrandTypography{Roles: make(map[string]*types.FontRole)}
	for name, value := range section {
		if name == "fonts" {
			fonts, err := parseFonts(value)
			if err != nil {
				return nil, err
			}
			typography.Fonts = fonts
			continue
		}
		if !types.IsValidRole(name) {
			return nil, fmt.Errorf("%w: %q", types.ErrUnknownFontRole, name)
		}
		role, err := parseRole(name, value)
		if err != nil {
			return nil, err
		}
		typography.Roles[name] = role
	}
	return typography, nil
}

// parseRole normalizes one role specification.
func parseRole(name string, value any) (*types.FontRole, error) {
	switch v := value.(type) {
	case string:
		return &types.FontRole{Family: v}, nil
	case map[string]any:
		role := &types.FontRole{
			Family:          asString(v["family"]),
			Size:            asString(v["size"]),
			Weight:          asString(v["weight"]),
			Style:           asString(v["style"]),
			LineHeight:      asString(v["line-height"]),
			Color:           asString(v["color"]),
			BackgroundColor: asString(v["background-color"]),
			Decoration:      asString(v["decoration"]),
		}
		return role, nil
	default:
		return nil, fmt.Errorf("typography role %q must be a string or mapping, got %T", name, value)
	}
}

// parseFonts normalizes the font descriptor list.
func parseFonts(raw any) ([]types.FontDescriptor, error) {
	list, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("typography fonts must be a list, got %T", raw)
	}

	var fonts []types.FontDescriptor
	for i, item := range list {
		entry, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("font list entry %d must be a mapping, got %T", i, item)
		}
		fonts = append(fonts, types.FontDescriptor{
			Family:  asString(entry["family"]),
			Source:  asString(entry["source"]),
			Weights: asStringList(entry["weight"]),
			Styles:  asStringList(entry["style"]),
			Display: asString(entry["display"]),
			Files:   asStringList(entry["files"]),
		})
	}
	return fonts, nil
}

// parseDefaults normalizes the framework defaults section: one raw
// key/value table per framework name.
func parseDefaults(raw any) (map[string]map[string]any, error) {
	section, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("defaults section must be a mapping, got %T", raw)
	}

	defaults := make(map[string]map[string]any)
	for framework, value := range section {
		table, ok := value.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("defaults for %q must be a mapping, got %T", framework, value)
		}
		defaults[framework] = table
	}
	return defaults, nil
}

// asString renders a scalar document value as a string. Nil renders empty.
func asString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", t)
	}
}

// asStringList accepts a scalar or a list and always returns a list.
func asStringList(v any) []string {
	switch t := v.(type) {
	case nil:
		return nil
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			out = append(out, asString(item))
		}
		return out
	default:
		return []string{asString(t)}
	}
}
