package types

// Dependency tags for SassBundle. A tagged bundle requires the named
// variable namespace to already exist when the stylesheet compiles.
const (
	DependencyBootstrap = "bootstrap"
)

// SassBundle is one generated layer of SCSS source text, partitioned into
// the five sections the style compilation step understands. Section order
// at compile time is Uses, Functions, Defaults, Mixins, Rules; within a
// compilation the bundle list order decides which !default declaration
// wins.
type SassBundle struct {
	Key        string // identifies the target surface this bundle was generated for
	Dependency string // optional namespace dependency tag; empty means self-contained

	Uses      string // @use / @import statements
	Defaults  string // $variable: value !default; declarations
	Functions string // function definitions
	Mixins    string // mixin definitions
	Rules     string // plain CSS rules
}

// Empty reports whether the bundle carries no generated text at all.
func (b SassBundle) Empty() bool {
	return b.Uses == "" && b.Defaults == "" && b.Functions == "" &&
		b.Mixins == "" && b.Rules == ""
}
