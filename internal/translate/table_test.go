package translate

import (
	"errors"
	"testing"

	"github.com/quillpress/brandsass/pkg/types"
)

func TestTableCoversEveryRole(t *testing.T) {
	for _, role := range types.RolePriority {
		entries, err := tableFor(role)
		if err != nil {
			t.Errorf("tableFor(%q): %v", role, err)
		}
		if len(entries) == 0 {
			t.Errorf("tableFor(%q) has no entries", role)
		}
	}
}

func TestTableUnknownRole(t *testing.T) {
	_, err := tableFor("blockquote")
	if !errors.Is(err, types.ErrUnknownFontRole) {
		t.Errorf("tableFor(blockquote) error = %v, want ErrUnknownFontRole", err)
	}
}

func TestTableBaseFamilyTargets(t *testing.T) {
	// The base family feeds both framework namespaces.
	entries, err := tableFor(types.RoleBase)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if e.attr != attrFamily {
			continue
		}
		if len(e.targets) != 2 || e.targets[0] != "font-family-base" || e.targets[1] != "mainFont" {
			t.Errorf("base family targets = %v, want [font-family-base mainFont]", e.targets)
		}
		return
	}
	t.Error("base role has no family entry")
}
