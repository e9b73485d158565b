package domain

import (
	"strings"
	"testing"
)

func TestNewLocalModID(t *testing.T) {
	id := NewLocalModID()

	if !strings.HasPrefix(id, "local-") {
		t.Errorf("expected local- prefix, got %q", id)
	}

	if id == NewLocalModID() {
		t.Error("expected unique ids on successive calls")
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Category
		wantErr bool
	}{
		{"exact match", "skins", CategorySkins, false},
		{"mixed case", "Maps", CategoryMaps, false},
		{"surrounding whitespace", "  sounds ", CategorySounds, false},
		{"other", "other", CategoryOther, false},
		{"unknown", "weapons", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCategory(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseCategory(%q) expected error, got %q", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCategory(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseCategory(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNameFromFilename(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"SkinPack.vpk", "SkinPack"},
		{"Red-Armor_v2.vpk", "Red Armor v2"},
		{"bundle.zip", "bundle"},
		{"already clean", "already clean"},
		{"trailing-.vpk", "trailing"},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			if got := NameFromFilename(tt.filename); got != tt.want {
				t.Errorf("NameFromFilename(%q) = %q, want %q", tt.filename, got, tt.want)
			}
		})
	}
}
