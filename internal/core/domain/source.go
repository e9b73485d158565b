package domain

// Source is the classified shape of a drop. It is a closed set: the
// unexported marker method keeps the variants to this package so the
// stager's type switch covers every case.
type Source interface {
	isSource()
}

// SinglePackedAsset is a drop of exactly one packed-asset file.
type SinglePackedAsset struct {
	Entry DroppedEntry
}

// SingleArchive is a drop of exactly one compressed archive.
type SingleArchive struct {
	Entry DroppedEntry
}

// FolderPackedAssets is a multi-entry drop (typically a folder) holding
// one or more packed-asset files. Entries contains only the matching
// files, in the order they were dropped. FolderName is the top folder
// name when the drop preserved relative paths, else empty.
type FolderPackedAssets struct {
	Entries    []DroppedEntry
	FolderName string
}

// Unrecognized is a drop that matched none of the known shapes.
type Unrecognized struct{}

func (SinglePackedAsset) isSource()  {}
func (SingleArchive) isSource()      {}
func (FolderPackedAssets) isSource() {}
func (Unrecognized) isSource()       {}
