package translate

import (
	"fmt"
	"strconv"

	"github.com/quillpress/brandsass/pkg/types"
)

// fontWeights maps the recognized weight keywords to the numeric scale.
// Keywords are case-sensitive and hyphenated; 950 is deliberately absent.
var fontWeights = map[string]int{
	"thin":        100,
	"extra-light": 200,
	"light":       300,
	"normal":      400,
	"medium":      500,
	"semi-bold":   600,
	"bold":        700,
	"extra-bold":  800,
	"black":       900,
}

// ResolveFontWeight converts a weight keyword to its numeric value. Numeric
// input passes through unchanged; an unrecognized keyword is a hard failure
// naming the keyword.
func ResolveFontWeight(weight string) (int, error) {
	if n, err := strconv.Atoi(weight); err == nil {
		return n, nil
	}
	if n, ok := fontWeights[weight]; ok {
		return n, nil
	}
	return 0, fmt.Errorf("%w: %q", types.ErrUnknownFontWeight, weight)
}

// resolveWeights converts a descriptor weight list, defaulting to 400 and
// 700 when the descriptor declares no weights at all.
func resolveWeights(weights []string) ([]int, error) {
	if len(weights) == 0 {
		return []int{400, 700}, nil
	}
	out := make([]int, 0, len(weights))
	for _, w := range weights {
		n, err := ResolveFontWeight(w)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}
