package domain

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Category is the fixed set of library categories a mod can be filed under.
type Category string

const (
	CategorySkins   Category = "skins"
	CategoryMaps    Category = "maps"
	CategorySounds  Category = "sounds"
	CategoryScripts Category = "scripts"
	CategoryUI      Category = "ui"
	CategoryOther   Category = "other"
)

// Categories returns all valid categories in display order.
func Categories() []Category {
	return []Category{
		CategorySkins,
		CategoryMaps,
		CategorySounds,
		CategoryScripts,
		CategoryUI,
		CategoryOther,
	}
}

// ParseCategory validates a user-supplied category string.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	for _, valid := range Categories() {
		if c == valid {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q (valid: %s)", s, CategoriesString())
}

// CategoriesString returns the valid categories joined for help text.
func CategoriesString() string {
	cats := Categories()
	parts := make([]string, len(cats))
	for i, c := range cats {
		parts[i] = string(c)
	}
	return strings.Join(parts, ", ")
}

// MetadataSchemaVersion is the current metadata.json document version.
const MetadataSchemaVersion = 1

// KindLocal marks mods ingested from local files rather than a remote
// catalog.
const KindLocal = "local"

// localIDPrefix namespaces generated ids so locally sourced mods can never
// collide with catalog ids.
const localIDPrefix = "local-"

// NewLocalModID generates a fresh locally-namespaced mod identifier.
func NewLocalModID() string {
	return localIDPrefix + uuid.NewString()
}

// DraftMetadata is the finished metadata record handed to the stager by
// the collecting layer. Name is required, everything else optional.
type DraftMetadata struct {
	Name        string
	Author      string
	Link        string
	Description string
	Image       []byte // preview image bytes, nil for the placeholder
	ImageName   string // original image file name, used for the extension
}

// Metadata is the canonical mod metadata document written to
// metadata.json inside the mod directory.
type Metadata struct {
	ID          string    `json:"id"`
	Kind        string    `json:"kind"`
	Name        string    `json:"name"`
	Author      string    `json:"author"`
	Link        *string   `json:"link"`
	Description *string   `json:"description"`
	Category    Category  `json:"category"`
	CreatedAt   time.Time `json:"createdAt"`
	Preview     string    `json:"preview"`
	Schema      int       `json:"_schema"`
}

// StagedMod is the result of a successful staging call. Ownership passes
// entirely to the caller; the stager never touches it again.
type StagedMod struct {
	ID          string
	RootDir     string
	PayloadPath string // empty on the archive-fallback path
	PreviewPath string
	Meta        Metadata
}

// ModRecord is one registry row: the metadata document plus where the mod
// lives on disk.
type ModRecord struct {
	Meta    Metadata `json:"metadata"`
	Dir     string   `json:"dir"`
	Payload string   `json:"payload,omitempty"` // payload file name under files/
}

var nonWord = regexp.MustCompile(`[-_.]+`)

// NameFromFilename derives a display name from a dropped file name,
// "Red-Armor_v2.vpk" -> "Red Armor v2".
func NameFromFilename(filename string) string {
	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	name := nonWord.ReplaceAllString(base, " ")
	return strings.TrimSpace(name)
}
