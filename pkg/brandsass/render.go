package brandsass

import (
	"strings"

	"github.com/quillpress/brandsass/pkg/types"
)

// sassSections pairs the compilation-step section markers with accessors,
// in the order the style compiler consumes them.
var sassSections = []struct {
	marker string
	text   func(types.SassBundle) string
}{
	{"uses", func(b types.SassBundle) string { return b.Uses }},
	{"functions", func(b types.SassBundle) string { return b.Functions }},
	{"defaults", func(b types.SassBundle) string { return b.Defaults }},
	{"mixins", func(b types.SassBundle) string { return b.Mixins }},
	{"rules", func(b types.SassBundle) string { return b.Rules }},
}

// RenderSCSS serializes one bundle as annotated SCSS source with section
// boundary markers, the textual form the style compilation step ingests.
func RenderSCSS(bundle types.SassBundle) string {
	var sb strings.Builder
	for _, section := range sassSections {
		text := section.text(bundle)
		if text == "" {
			continue
		}
		sb.WriteString("/*-- scss:")
		sb.WriteString(section.marker)
		sb.WriteString(" --*/\n")
		sb.WriteString(text)
		if !strings.HasSuffix(text, "\n") {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// RenderAll serializes a bundle list in order, which preserves the
// override-ordering contract between layers.
func RenderAll(bundles []types.SassBundle) string {
	var sb strings.Builder
	for _, b := range bundles {
		sb.WriteString(RenderSCSS(b))
	}
	return sb.String()
}
