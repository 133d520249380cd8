// Package cssprobe inspects rendered presentation HTML for style
// verification: it collects embedded stylesheets, extracts CSS custom
// properties, and parses numeric font sizes so tests can assert
// proportional relationships between them.
package cssprobe

import (
	"fmt"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Probe wraps one parsed HTML document.
type Probe struct {
	doc *goquery.Document
	css string
}

// Load parses a rendered HTML document.
func Load(r io.Reader) (*Probe, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}

	var sb strings.Builder
	doc.Find("style").Each(func(_ int, s *goquery.Selection) {
		sb.WriteString(s.Text())
		sb.WriteString("\n")
	})
	return &Probe{doc: doc, css: sb.String()}, nil
}

// Stylesheet returns the concatenated text of every embedded style element.
func (p *Probe) Stylesheet() string {
	return p.css
}

// CustomProperty extracts the last declared value of a CSS custom property
// from the embedded stylesheets. The last declaration wins, matching the
// cascade for equal-specificity rules.
func (p *Probe) CustomProperty(name string) (string, bool) {
	return CustomProperty(p.css, name)
}

// InlineFontSize returns the font-size declared in the style attribute of
// the first element matching the selector.
func (p *Probe) InlineFontSize(selector string) (string, bool) {
	style, ok := p.doc.Find(selector).First().Attr("style")
	if !ok {
		return "", false
	}
	return declarationValue(style, "font-size")
}

// CustomProperty extracts the last declared value of a custom property from
// raw CSS text.
func CustomProperty(css, name string) (string, bool) {
	return declarationValue(css, name)
}

// declarationValue finds the last "name: value" declaration in CSS text.
func declarationValue(css, name string) (string, bool) {
	re := regexp.MustCompile(regexp.QuoteMeta(name) + `\s*:\s*([^;}]+)`)
	matches := re.FindAllStringSubmatch(css, -1)
	if len(matches) == 0 {
		return "", false
	}
	return strings.TrimSpace(matches[len(matches)-1][1]), true
}

// Pixels parses a pixel length ("38px" or a bare number) into a float.
func Pixels(value string) (float64, error) {
	trimmed := strings.TrimSuffix(strings.TrimSpace(value), "px")
	n, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("parse pixel value %q: %w", value, err)
	}
	return n, nil
}

// Scale parses a unitless scale factor ("0.55").
func Scale(value string) (float64, error) {
	n, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, fmt.Errorf("parse scale value %q: %w", value, err)
	}
	return n, nil
}

// ApproxEqual reports whether two computed values agree within epsilon.
// Rendering engines round sub-pixel sizes, so exact equality is too strict.
func ApproxEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) <= epsilon
}
