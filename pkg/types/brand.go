package types

// Brand is a resolved brand-definition document. It is produced once per
// document/format combination by a loader and treated as read-only by the
// translator; every translation pass works from the same snapshot.
type Brand struct {
	Color      *BrandColor               // named colors and palette; nil when the document declares none
	Typography *BrandTypography          // per-role font specifications; nil when absent
	Defaults   map[string]map[string]any // framework name -> raw key/value overrides
	Dir        string                    // directory containing the brand document, for font path correction
}

// HasColor reports whether the brand declares any color data.
func (b *Brand) HasColor() bool {
	return b != nil && b.Color != nil && (len(b.Color.Palette) > 0 || len(b.Color.Named) > 0)
}

// HasTypography reports whether the brand declares any typography data.
func (b *Brand) HasTypography() bool {
	return b != nil && b.Typography != nil &&
		(len(b.Typography.Roles) > 0 || len(b.Typography.Fonts) > 0)
}

// FrameworkDefaults returns the raw default table for a framework, or nil.
func (b *Brand) FrameworkDefaults(framework string) map[string]any {
	if b == nil || b.Defaults == nil {
		return nil
	}
	return b.Defaults[framework]
}

// BrandColor holds the color section of a brand document: a palette of raw
// named colors plus top-level semantic colors that may reference palette
// entries or each other by name.
type BrandColor struct {
	Palette map[string]string // raw color values keyed by palette name
	Named   map[string]string // semantic colors keyed by role-like names (foreground, primary, ...)
}

// maxColorHops bounds reference chains during resolution so that a cyclic
// brand document cannot loop forever.
const maxColorHops = 100

// Resolve follows a color name through the semantic names and the palette
// until it reaches a raw value. A name with no entry anywhere resolves to
// itself, which lets literal CSS colors pass through unchanged.
func (c *BrandColor) Resolve(name string) string {
	if c == nil {
		return name
	}
	current := name
	for i := 0; i < maxColorHops; i++ {
		if v, ok := c.Named[current]; ok && v != current {
			current = v
			continue
		}
		if v, ok := c.Palette[current]; ok && v != current {
			current = v
			continue
		}
		return current
	}
	return current
}
