package translate

import (
	"fmt"

	"github.com/quillpress/brandsass/pkg/types"
)

// Resolved attribute names used as keys between role resolution and
// variable emission.
const (
	attrFamily          = "family"
	attrSize            = "size"
	attrWeight          = "weight"
	attrStyle           = "style"
	attrLineHeight      = "line-height"
	attrColor           = "color"
	attrBackgroundColor = "background-color"
	attrDecoration      = "decoration"
)

// tableEntry maps one resolved attribute to the style variables it feeds.
// A single attribute may target variables in more than one framework
// namespace; every target receives its own declaration.
type tableEntry struct {
	attr    string
	targets []string
}

// variableTable is the per-role translation table. Entry order fixes
// emission order inside a role; role order comes from types.RolePriority.
// Because every declaration carries !default, a variable emitted for an
// earlier (more specific) role wins over the same variable emitted for a
// later one.
var variableTable = map[string][]tableEntry{
	types.RoleLink: {
		{attrColor, []string{"link-color", "linkColor"}},
		{attrDecoration, []string{"link-decoration"}},
		{attrWeight, []string{"link-weight"}},
	},
	types.RoleMonospaceBlock: {
		{attrFamily, []string{"code-block-font-family"}},
		{attrSize, []string{"code-block-font-size"}},
		{attrLineHeight, []string{"code-block-line-height"}},
		{attrColor, []string{"code-block-color"}},
		{attrBackgroundColor, []string{"code-block-bg"}},
	},
	types.RoleMonospaceInline: {
		{attrFamily, []string{"code-inline-font-family"}},
		{attrSize, []string{"code-inline-font-size"}},
		{attrColor, []string{"code-color"}},
		{attrBackgroundColor, []string{"code-bg"}},
	},
	types.RoleMonospace: {
		{attrFamily, []string{"font-family-monospace", "codeFont"}},
		{attrSize, []string{"code-font-size"}},
		{attrColor, []string{"code-color"}},
		{attrBackgroundColor, []string{"code-bg"}},
	},
	types.RoleHeadings: {
		{attrFamily, []string{"headings-font-family", "presentation-heading-font"}},
		{attrLineHeight, []string{"headings-line-height", "presentation-heading-line-height"}},
		{attrWeight, []string{"headings-font-weight", "presentation-heading-font-weight"}},
		{attrStyle, []string{"headings-font-style"}},
		{attrColor, []string{"headings-color", "presentation-heading-color"}},
	},
	types.RoleBase: {
		{attrFamily, []string{"font-family-base", "mainFont"}},
		{attrSize, []string{"font-size-base", "presentation-font-size-root"}},
		{attrLineHeight, []string{"line-height-base"}},
		{attrWeight, []string{"font-weight-base"}},
		{attrColor, []string{"body-color"}},
		{attrBackgroundColor, []string{"body-bg"}},
	},
}

// tableFor returns the translation entries for a role, failing on a role
// name outside the recognized set.
func tableFor(role string) ([]tableEntry, error) {
	entries, ok := variableTable[role]
	if !ok {
		return nil, fmt.Errorf("%w: %q", types.ErrUnknownFontRole, role)
	}
	return entries, nil
}
