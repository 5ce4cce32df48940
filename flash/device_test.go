package flash

import (
	"bytes"
	"io"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// image returns a flash image of blocks blocks with the first used blocks
// written.
func image(blocks, used int) []byte {
	data := bytes.Repeat([]byte{erased}, blocks*BlockSize)
	for i := 0; i < used*BlockSize; i++ {
		data[i] = byte(i % 251)
	}
	return data
}

func TestFreeSpaceEmpty(t *testing.T) {
	d := NewMemory(image(16, 0))
	require.Equal(t, int64(0), d.FreeSpaceStart())
}

func TestFreeSpacePartial(t *testing.T) {
	for used := 0; used <= 16; used++ {
		d := NewMemory(image(16, used))
		require.Equal(t, int64(used*BlockSize), d.FreeSpaceStart(), "used=%d", used)
	}
}

func TestFreeSpaceFull(t *testing.T) {
	data := image(4, 4)
	d := NewMemory(append(data, 1, 2, 3))
	require.Equal(t, int64(len(data)+3), d.FreeSpaceStart())
}

func TestFreeSpaceZeroLength(t *testing.T) {
	d := NewMemory(nil)
	require.Equal(t, int64(0), d.FreeSpaceStart())
}

func TestReadAtClipsToSize(t *testing.T) {
	d := NewMemory([]byte("0123456789"))
	buf := make([]byte, 4)
	n, err := d.ReadAt(buf, 8)
	require.Equal(t, 2, n)
	require.ErrorIs(t, err, io.EOF)
	require.Equal(t, []byte("89"), buf[:2])

	n, err = d.ReadAt(buf, 10)
	require.Equal(t, 0, n)
	require.ErrorIs(t, err, io.EOF)

	n, err = d.ReadAt(buf, 0)
	require.Nil(t, err)
	require.Equal(t, 4, n)
}

func TestOpen(t *testing.T) {
	afs := afero.NewMemMapFs()
	err := afero.WriteFile(afs, "/flash.bin", image(8, 3), 0600)
	require.Nil(t, err)
	d, err := Open(afs, "/flash.bin")
	require.Nil(t, err)
	defer d.Close()
	require.Equal(t, int64(8*BlockSize), d.Size())
	require.Equal(t, int64(3*BlockSize), d.FreeSpaceStart())
	buf := make([]byte, 3)
	n, err := d.ReadAt(buf, 1)
	require.Nil(t, err)
	require.Equal(t, 3, n)
	require.Equal(t, []byte{1, 2, 3}, buf)
}

func TestOpenMissing(t *testing.T) {
	_, err := Open(afero.NewMemMapFs(), "/nope.bin")
	require.NotNil(t, err)
}

func TestOpenDirectory(t *testing.T) {
	afs := afero.NewMemMapFs()
	require.Nil(t, afs.Mkdir("/logs", 0700))
	_, err := Open(afs, "/logs")
	require.NotNil(t, err)
}
