package translate

import (
	"strings"
	"testing"
)

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"primary", "primary"},
		{"light blue", "light-blue"},
		{"accent/2", "accent-2"},
		{"snake_case", "snake_case"},
		{"already-safe", "already-safe"},
		{"weird!@#name", "weird---name"},
	}
	for _, tt := range tests {
		if got := sanitizeName(tt.in); got != tt.want {
			t.Errorf("sanitizeName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestVarDecl(t *testing.T) {
	if got, want := varDecl("brand-primary", "#ff0000"), "$brand-primary: #ff0000 !default;"; got != want {
		t.Errorf("varDecl = %q, want %q", got, want)
	}
}

func TestCustomProp(t *testing.T) {
	if got, want := customProp("brand-primary", "#ff0000"), "--brand-primary: #ff0000;"; got != want {
		t.Errorf("customProp = %q, want %q", got, want)
	}
}

func TestAnnotateBalance(t *testing.T) {
	out := annotate("brand / color", "$x: 1 !default;")
	pushes := strings.Count(out, `{"action":"push"`)
	pops := strings.Count(out, `{"action":"pop"}`)
	if pushes != 1 || pops != 1 {
		t.Errorf("annotate markers unbalanced: %d pushes, %d pops", pushes, pops)
	}
	if !strings.Contains(out, `"origin":"brand / color"`) {
		t.Errorf("annotate output missing origin: %q", out)
	}
}

func TestAnnotateEmptyBody(t *testing.T) {
	if got := annotate("brand / color", ""); got != "" {
		t.Errorf("annotate of empty body = %q, want empty", got)
	}
}
