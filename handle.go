package flashfat

import (
	"io"
)

// Handle is the backing store of an Entry: either a ConstantBuffer or a
// FlashRange.
type Handle interface {
	handle()
}

// ConstantBuffer serves entry content from a fixed in-memory buffer.
type ConstantBuffer []byte

func (ConstantBuffer) handle() {}

// copyAt clips the requested window to the buffer. A window that starts at
// or past the end copies nothing.
func (b ConstantBuffer) copyAt(dest []byte, off int64) int {
	if off < 0 || off >= int64(len(b)) {
		return 0
	}
	return copy(dest, b[off:])
}

// FlashRange serves entry content straight from flash, starting at the
// absolute offset Start.
type FlashRange struct {
	Flash io.ReaderAt
	Start int64
}

func (FlashRange) handle() {}

// copyAt forwards to the flash reader without clipping; what happens past
// the used region is up to the reader.
func (r FlashRange) copyAt(dest []byte, off int64) int {
	n, _ := r.Flash.ReadAt(dest, r.Start+off)
	return n
}

// NewConstantEntry wraps buf as a file entry of the root directory.
func NewConstantEntry(name string, attr DirectoryAttr, buf []byte, maxSize int64, times Times) Entry {
	size := int64(len(buf))
	if maxSize < size {
		maxSize = size
	}
	return Entry{
		Name:    name,
		Attr:    attr,
		Level:   1,
		Size:    size,
		MaxSize: maxSize,
		Times:   times,
		Handle:  ConstantBuffer(buf),
	}
}

// NewFlashEntry wraps the flash range [start, start+size) as a file entry of
// the root directory.
func NewFlashEntry(name string, flash io.ReaderAt, start, size int64, times Times) Entry {
	return Entry{
		Name:    name,
		Level:   1,
		Offset:  start,
		Size:    size,
		MaxSize: size,
		Times:   times,
		Handle:  FlashRange{Flash: flash, Start: start},
	}
}
