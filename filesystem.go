package flashfat

import (
	"io"
)

// Flash is the raw log store. Reads are best-effort; FreeSpaceStart reports
// the offset where used flash ends.
type Flash interface {
	io.ReaderAt
	FreeSpaceStart() int64
}

// An Engine serves a finished entry table to a host as a FAT volume.
type Engine interface {
	Initialize(label string, entries []Entry) error
}
