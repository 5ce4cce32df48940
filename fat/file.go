package fat

import (
	"io"
)

// File reads one entry of the volume. Content is clipped to the declared
// size, and bytes the entry does not supply read as zero.
type File struct {
	entry *DirectoryEntry
}

// ensure File implements io.ReaderAt
var _ io.ReaderAt = (*File)(nil)

func (f *File) Name() string {
	return f.entry.Name()
}

func (f *File) Size() int64 {
	return f.entry.Size()
}

func (f *File) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 {
		return 0, Fatalf("negative offset: %d", off)
	}
	size := f.entry.Size()
	if off >= size {
		return 0, io.EOF
	}
	window := p
	if remain := size - off; int64(len(window)) > remain {
		window = window[:remain]
	}
	clear(window)
	f.entry.entry.CopyAt(window, off)
	if len(window) < len(p) {
		return len(window), io.EOF
	}
	return len(window), nil
}

// Reader returns a sequential reader over the whole file.
func (f *File) Reader() *io.SectionReader {
	return io.NewSectionReader(f, 0, f.Size())
}
