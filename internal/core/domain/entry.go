package domain

import "os"

// DroppedEntry is one file as presented by a drop or folder selection.
// Content is read lazily: either inline Data or a backing Path on disk.
type DroppedEntry struct {
	Name         string // base file name, never empty
	RelativePath string // folder nesting as dropped, ends with Name when set
	Path         string // on-disk location backing the entry
	Data         []byte // inline content, takes precedence over Path
}

// Bytes returns the entry content, reading from the backing path when the
// content was not supplied inline.
func (e DroppedEntry) Bytes() ([]byte, error) {
	if e.Data != nil {
		return e.Data, nil
	}
	return os.ReadFile(e.Path)
}
