package image

import (
	"bytes"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/rstms/flashfat/table"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

const marker = "H Product:Blackbox"

// writeDump writes a 64 KiB flash dump holding three logs in the first
// 12 KiB to /flash.bin.
func writeDump(t *testing.T, afs afero.Fs) []byte {
	data := bytes.Repeat([]byte{0xff}, 64*1024)
	for i := 0; i < 12288; i++ {
		data[i] = byte('a' + i%26)
	}
	for _, offset := range []int{0, 4096, 10240} {
		copy(data[offset:], marker)
	}
	err := afero.WriteFile(afs, "/flash.bin", data, 0600)
	require.Nil(t, err)
	return data
}

func testConfig() table.Config {
	cfg := table.DefaultConfig()
	cfg.DiskSize = 1 * table.MB
	return cfg
}

func openImage(t *testing.T, afs afero.Fs) *Image {
	i, err := OpenImage(afs, "/flash.bin", testConfig(), WithLogger(log.New(io.Discard)))
	require.Nil(t, err)
	return i
}

func TestImageScanFiles(t *testing.T) {
	afs := afero.NewMemMapFs()
	writeDump(t, afs)
	i := openImage(t, afs)
	defer i.Close()

	records := i.ScanFiles()
	names := []string{}
	var total int64
	for _, record := range records {
		names = append(names, record.Name)
		total += record.Size
		require.True(t, record.ReadOnly, record.Name)
	}
	require.Equal(t, []string{"autorun.inf", "icon.ico", "BTTR_001.BBL", "BTTR_002.BBL", "BTTR_003.BBL", "BTTR_ALL.BBL", table.PaddingName}, names)
	require.Equal(t, testConfig().DiskSize, total)
	require.True(t, records[0].Hidden)
	require.False(t, records[2].Hidden)
	require.Equal(t, "BUTTERF", i.FileSystem().Label())
}

func TestImageReadFile(t *testing.T) {
	afs := afero.NewMemMapFs()
	data := writeDump(t, afs)
	i := openImage(t, afs)
	defer i.Close()

	buf, err := i.ReadFile("BTTR_002.BBL")
	require.Nil(t, err)
	require.Equal(t, data[4096:10240], buf)

	buf, err = i.ReadFile("bttr_all.bbl")
	require.Nil(t, err)
	require.Equal(t, data[:12288], buf)

	_, err = i.ReadFile("BTTR_004.BBL")
	require.NotNil(t, err)
}

func TestImageExport(t *testing.T) {
	afs := afero.NewMemMapFs()
	data := writeDump(t, afs)
	i := openImage(t, afs)
	defer i.Close()

	err := i.Export(afs, "/out", false)
	require.Nil(t, err)
	buf, err := afero.ReadFile(afs, "/out/BTTR_003.BBL")
	require.Nil(t, err)
	require.Equal(t, data[10240:12288], buf)
	exists, err := afero.Exists(afs, "/out/autorun.inf")
	require.Nil(t, err)
	require.False(t, exists)
	exists, err = afero.Exists(afs, "/out/"+table.PaddingName)
	require.Nil(t, err)
	require.False(t, exists)

	err = i.Export(afs, "/all", true)
	require.Nil(t, err)
	buf, err = afero.ReadFile(afs, "/all/autorun.inf")
	require.Nil(t, err)
	require.Contains(t, string(buf), "[autorun]")
	exists, err = afero.Exists(afs, "/all/"+table.PaddingName)
	require.Nil(t, err)
	require.False(t, exists)
}

func TestImageEmptyFlash(t *testing.T) {
	afs := afero.NewMemMapFs()
	err := afero.WriteFile(afs, "/flash.bin", bytes.Repeat([]byte{0xff}, 8192), 0600)
	require.Nil(t, err)
	i := openImage(t, afs)
	defer i.Close()
	tbl := i.Table()
	require.Empty(t, tbl.Segments)
	require.Equal(t, testConfig().DiskSize, tbl.TotalSize())
	require.Nil(t, i.FileSystem().Entry("BTTR_ALL.BBL"))
}

func TestImageTooMuchFlash(t *testing.T) {
	afs := afero.NewMemMapFs()
	writeDump(t, afs)
	cfg := testConfig()
	cfg.DiskSize = 16384
	_, err := OpenImage(afs, "/flash.bin", cfg, WithLogger(log.New(io.Discard)))
	require.NotNil(t, err)
}

func TestImageMissing(t *testing.T) {
	_, err := OpenImage(afero.NewMemMapFs(), "/missing.bin", testConfig())
	require.NotNil(t, err)
}
