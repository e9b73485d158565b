// Package preview stages the preview image of a mod directory: either the
// user-supplied image bytes under a normalized file name, or a fixed
// placeholder vector graphic when no image was provided.
package preview

import (
	"os"
	"path/filepath"
	"strings"
)

// PlaceholderName is the file written when no image bytes are supplied.
const PlaceholderName = "preview.svg"

// PlaceholderSVG is the fixed placeholder markup. Byte-stable so callers
// can detect an unset preview.
const PlaceholderSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="256" height="256" viewBox="0 0 256 256">
  <rect width="256" height="256" fill="#2b2d31"/>
  <path d="M88 96h80v80H88z" fill="none" stroke="#5a5d64" stroke-width="8"/>
  <path d="M88 96l40 28 40-28M128 124v52" fill="none" stroke="#5a5d64" stroke-width="8"/>
</svg>
`

var imageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
	".bmp":  true,
	".svg":  true,
}

// FileName returns the preview file name for a supplied image name,
// "preview.<ext>" for recognized image extensions and "preview.png" for
// anything else.
func FileName(imageName string) string {
	ext := strings.ToLower(filepath.Ext(imageName))
	if !imageExts[ext] {
		ext = ".png"
	}
	return "preview" + ext
}

// Write stages the preview into dir and returns the written file name.
// A nil image writes the placeholder SVG.
func Write(dir string, image []byte, imageName string) (string, error) {
	name := PlaceholderName
	data := []byte(PlaceholderSVG)

	if image != nil {
		name = FileName(imageName)
		data = image
	}

	if err := os.WriteFile(filepath.Join(dir, name), data, 0644); err != nil {
		return "", err
	}
	return name, nil
}
