// SCSS emission helpers shared by the bundle generators: variable and
// custom-property declarations, provenance annotations, and identifier
// sanitizing.
package translate

import (
	"fmt"
	"regexp"
	"strings"
)

// unsafeNameRunes matches every character that may not appear in an SCSS
// identifier derived from a palette key.
var unsafeNameRunes = regexp.MustCompile(`[^a-zA-Z0-9_-]`)

// sanitizeName rewrites a raw brand key into a safe SCSS identifier by
// replacing every disallowed character with a hyphen.
func sanitizeName(s string) string {
	return unsafeNameRunes.ReplaceAllString(s, "-")
}

// varDecl renders one variable declaration with !default semantics, so a
// declaration loaded earlier in the compilation wins over this one.
func varDecl(name string, value any) string {
	return fmt.Sprintf("$%s: %v !default;", name, value)
}

// customProp renders one CSS custom-property declaration.
func customProp(name string, value string) string {
	return fmt.Sprintf("--%s: %s;", name, value)
}

// rootRule wraps declaration lines in a :root rule block.
func rootRule(decls []string) string {
	var sb strings.Builder
	sb.WriteString(":root {\n")
	for _, d := range decls {
		sb.WriteString("  ")
		sb.WriteString(d)
		sb.WriteString("\n")
	}
	sb.WriteString("}")
	return sb.String()
}

// annotate wraps a generated fragment in provenance markers so downstream
// tooling can attribute each declaration to its origin. The push and pop
// markers always balance: a fragment gets either both or, when empty,
// neither.
func annotate(origin string, body string) string {
	if body == "" {
		return ""
	}
	return fmt.Sprintf("/* {\"action\":\"push\",\"origin\":%q} */\n%s\n/* {\"action\":\"pop\"} */\n", origin, body)
}
