package types

// Font sources. An empty source is legal and means "provider unspecified";
// the bunny resolver accepts it, the google resolver does not.
const (
	FontSourceGoogle = "google"
	FontSourceBunny  = "bunny"
	FontSourceFile   = "file"
)

// Font display strategies accepted on a descriptor. The default is "swap".
const FontDisplayDefault = "swap"

// FontDescriptor declares one family/weight/style combination in the brand
// font list. Several descriptors may share a family name to express
// multiple weight or style axes of the same family.
type FontDescriptor struct {
	Family  string
	Source  string   // google, bunny, file, or empty
	Weights []string // numeric strings ("400") or keywords ("semi-bold")
	Styles  []string // normal, italic
	Display string   // font-display strategy for remote imports
	Files   []string // font file paths, only meaningful for source "file"
}

// Italic reports whether the descriptor requests an italic style.
func (d FontDescriptor) Italic() bool {
	for _, s := range d.Styles {
		if s == "italic" {
			return true
		}
	}
	return false
}
