package domain

import (
	"path/filepath"
	"strings"
)

// PackedAssetExt is the one file extension the pipeline treats as a mod
// payload. Matching is by extension only; contents are never inspected.
const PackedAssetExt = ".vpk"

// ZipExt is the only archive container the pipeline can actually open.
const ZipExt = ".zip"

// archiveExts are the recognized compressed-archive suffixes. Only ZipExt
// is decodable; the rest trigger the whole-archive fallback store.
var archiveExts = []string{ZipExt, ".rar", ".7z"}

// IsPackedAsset reports whether name carries the packed-asset extension.
func IsPackedAsset(name string) bool {
	return strings.EqualFold(filepath.Ext(name), PackedAssetExt)
}

// IsArchive reports whether name carries a recognized archive extension.
func IsArchive(name string) bool {
	ext := filepath.Ext(name)
	for _, a := range archiveExts {
		if strings.EqualFold(ext, a) {
			return true
		}
	}
	return false
}

// IsZip reports whether name carries the one decodable archive extension.
func IsZip(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ZipExt)
}
