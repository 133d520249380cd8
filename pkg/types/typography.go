package types

// Typography role names. Each role configures one semantic text purpose
// independently of the others.
const (
	RoleBase            = "base"
	RoleHeadings        = "headings"
	RoleLink            = "link"
	RoleMonospace       = "monospace"
	RoleMonospaceBlock  = "monospace-block"
	RoleMonospaceInline = "monospace-inline"
)

// RolePriority lists the roles in resolution order, most specific first.
// Declarations carry !default semantics, so a variable written by an
// earlier role is a no-op when a later role targets the same variable.
var RolePriority = []string{
	RoleLink,
	RoleMonospaceBlock,
	RoleMonospaceInline,
	RoleMonospace,
	RoleHeadings,
	RoleBase,
}

// validRoles is the set of recognized typography role names.
var validRoles = map[string]bool{
	RoleBase:            true,
	RoleHeadings:        true,
	RoleLink:            true,
	RoleMonospace:       true,
	RoleMonospaceBlock:  true,
	RoleMonospaceInline: true,
}

// IsValidRole reports whether name is a recognized typography role.
func IsValidRole(name string) bool {
	return validRoles[name]
}

// BrandTypography holds the typography section of a brand document: the
// font list plus one optional specification per role.
type BrandTypography struct {
	Fonts []FontDescriptor     // declared fonts; several entries may share a family
	Roles map[string]*FontRole // role name -> specification; absent roles are skipped
}

// Role returns the specification for a role, or nil when the role is not
// configured.
func (t *BrandTypography) Role(name string) *FontRole {
	if t == nil || t.Roles == nil {
		return nil
	}
	return t.Roles[name]
}

// FontRole is the specification for one typography role. All fields are
// optional; empty strings mean "not configured". A bare-string role in the
// source document loads as a family-only specification.
type FontRole struct {
	Family          string
	Size            string
	Weight          string // numeric string or weight keyword
	Style           string // normal or italic
	LineHeight      string
	Color           string // passed through color resolution before emission
	BackgroundColor string // passed through color resolution before emission
	Decoration      string
}

// FamilyOnly reports whether the role configures nothing beyond a family.
func (r *FontRole) FamilyOnly() bool {
	return r.Size == "" && r.Weight == "" && r.Style == "" && r.LineHeight == "" &&
		r.Color == "" && r.BackgroundColor == "" && r.Decoration == ""
}
