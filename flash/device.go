package flash

import (
	"bytes"
	"io"

	"github.com/rstms/flashfat"
	"github.com/spf13/afero"
)

// BlockSize is the granularity at which free space is detected.
const BlockSize = 2048

// freeTestSize bytes at the start of a block must all be erased for the
// block to count as free.
const freeTestSize = 16

const erased = 0xff

// Device is a read-only view of a flash log store.
type Device struct {
	r      io.ReaderAt
	size   int64
	free   int64
	closer io.Closer
}

// ensure Device implements flashfat.Flash
var _ flashfat.Flash = (*Device)(nil)

// New wraps r, which holds size bytes of flash content. The free-space
// boundary is located once, here.
func New(r io.ReaderAt, size int64) *Device {
	d := &Device{r: r, size: size}
	d.free = d.identifyStartOfFreeSpace()
	return d
}

// NewMemory wraps an in-memory flash image.
func NewMemory(data []byte) *Device {
	return New(bytes.NewReader(data), int64(len(data)))
}

// Open opens a flash dump file.
func Open(afs afero.Fs, filename string) (*Device, error) {
	file, err := afs.Open(filename)
	if err != nil {
		return nil, Fatal(err)
	}
	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, Fatal(err)
	}
	if info.IsDir() {
		file.Close()
		return nil, Fatalf("not a flash image: %s", filename)
	}
	d := New(file, info.Size())
	d.closer = file
	return d, nil
}

func (d *Device) Close() error {
	if d.closer != nil {
		err := d.closer.Close()
		if err != nil {
			return Fatal(err)
		}
		d.closer = nil
	}
	return nil
}

func (d *Device) Size() int64 {
	return d.size
}

func (d *Device) FreeSpaceStart() int64 {
	return d.free
}

// ReadAt reads flash content. Reads are clipped to the device size.
func (d *Device) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 || off >= d.size {
		return 0, io.EOF
	}
	if remain := d.size - off; int64(len(p)) > remain {
		n, err := d.r.ReadAt(p[:remain], off)
		if err == nil {
			err = io.EOF
		}
		return n, err
	}
	return d.r.ReadAt(p, off)
}

// identifyStartOfFreeSpace binary searches for the first erased block. The
// log is written front to back, so every block after the first erased one is
// erased too.
func (d *Device) identifyStartOfFreeSpace() int64 {
	blocks := d.size / BlockSize
	left, right := int64(0), blocks
	for left < right {
		mid := (left + right) / 2
		if d.blockIsErased(mid) {
			right = mid
		} else {
			left = mid + 1
		}
	}
	if left == blocks {
		return d.size
	}
	return left * BlockSize
}

func (d *Device) blockIsErased(block int64) bool {
	buf := make([]byte, freeTestSize)
	n, _ := d.r.ReadAt(buf, block*BlockSize)
	for _, b := range buf[:n] {
		if b != erased {
			return false
		}
	}
	return true
}
