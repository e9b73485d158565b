package preview

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileName(t *testing.T) {
	tests := []struct {
		imageName string
		expected  string
	}{
		{"shot.png", "preview.png"},
		{"shot.JPG", "preview.jpg"},
		{"shot.jpeg", "preview.jpeg"},
		{"shot.webp", "preview.webp"},
		{"vector.svg", "preview.svg"},
		{"weird.tiff", "preview.png"},
		{"noext", "preview.png"},
	}

	for _, tt := range tests {
		t.Run(tt.imageName, func(t *testing.T) {
			if got := FileName(tt.imageName); got != tt.expected {
				t.Errorf("FileName(%q) = %q, want %q", tt.imageName, got, tt.expected)
			}
		})
	}
}

func TestWrite_SuppliedImage(t *testing.T) {
	dir := t.TempDir()
	image := []byte("fake image content")

	name, err := Write(dir, image, "screenshot.png")
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if name != "preview.png" {
		t.Errorf("expected preview.png, got %q", name)
	}

	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("failed to read written preview: %v", err)
	}
	if string(data) != string(image) {
		t.Error("written preview bytes do not match input")
	}
}

func TestWrite_PlaceholderWhenNoImage(t *testing.T) {
	dir := t.TempDir()

	name, err := Write(dir, nil, "")
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if name != PlaceholderName {
		t.Errorf("expected %q, got %q", PlaceholderName, name)
	}

	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("failed to read placeholder: %v", err)
	}
	if string(data) != PlaceholderSVG {
		t.Error("placeholder content does not equal the fixed markup")
	}
}
