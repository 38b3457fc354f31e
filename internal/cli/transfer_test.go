package cli

import (
	"bytes"
	"strings"
	"testing"

	"drawer-cabinet/internal/api"
)

func TestFormatFor(t *testing.T) {
	tests := []struct {
		flag, path, want string
	}{
		{"", "layout.yaml", formatYAML},
		{"", "layout.YML", formatYAML},
		{"", "layout.json", formatJSON},
		{"", "", formatJSON},
		{"YAML", "layout.json", formatYAML},
	}
	for _, tt := range tests {
		if got := formatFor(tt.flag, tt.path); got != tt.want {
			t.Errorf("formatFor(%q, %q) = %q, want %q", tt.flag, tt.path, got, tt.want)
		}
	}
}

func TestLayoutYAML_KeepsLabels(t *testing.T) {
	name := "Caps"
	in := []api.DrawerJSON{
		{ID: "A1", Size: "MEDIUM", Title: "A01,A02", Name: &name, Positions: "[1,2]", Keywords: `["100nF","ceramic"]`, Spacing: 30},
		{ID: "A10", Size: "MEDIUM", Title: "A10", Positions: "[10]", IsRightSection: true, Keywords: "[]"},
	}

	var buf bytes.Buffer
	if err := encodeLayout(&buf, formatYAML, in); err != nil {
		t.Fatalf("encodeLayout() error = %v", err)
	}
	if !strings.Contains(buf.String(), "keywords: [100nF, ceramic]") {
		t.Errorf("YAML should list keywords inline:\n%s", buf.String())
	}

	out, err := decodeLayout(&buf, formatYAML)
	if err != nil {
		t.Fatalf("decodeLayout() error = %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("got %d drawers, want 2", len(out))
	}
	if out[0].Name == nil || *out[0].Name != "Caps" || out[0].Positions != "[1,2]" || out[0].Keywords != `["100nF","ceramic"]` {
		t.Errorf("A1 = %+v", out[0])
	}
	if out[1].Name != nil || out[1].Keywords != "[]" || !out[1].IsRightSection {
		t.Errorf("A10 = %+v", out[1])
	}
}

func TestDecodeLayout_UnknownFormat(t *testing.T) {
	if _, err := decodeLayout(strings.NewReader("[]"), "csv"); err == nil {
		t.Error("decodeLayout() with unknown format should fail")
	}
}
