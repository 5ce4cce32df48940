package image

import (
	"io"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/rstms/flashfat/fat"
	"github.com/rstms/flashfat/flash"
	"github.com/rstms/flashfat/table"
	"github.com/spf13/afero"
)

type FileRecord struct {
	Name      string `yaml:"name"`
	ShortName string `yaml:"short_name"`
	Size      int64  `yaml:"size"`
	Cluster   uint32 `yaml:"cluster"`
	Hidden    bool   `yaml:"hidden"`
	ReadOnly  bool   `yaml:"read_only"`
}

// Image is a flash dump file presented as a FAT volume.
type Image struct {
	Filename string
	flash    *flash.Device
	table    table.Table
	fs       *fat.FileSystem
	logger   *log.Logger
}

type Option func(*Image)

func WithLogger(logger *log.Logger) Option {
	return func(i *Image) {
		i.logger = logger
	}
}

func OpenImage(afs afero.Fs, filename string, config table.Config, opts ...Option) (*Image, error) {
	i := Image{Filename: filename, logger: log.Default()}
	for _, opt := range opts {
		opt(&i)
	}
	var err error
	i.flash, err = flash.Open(afs, filename)
	if err != nil {
		return nil, Fatal(err)
	}
	builder, err := table.NewBuilder(config, i.flash, table.WithLogger(i.logger))
	if err != nil {
		i.Close()
		return nil, Fatal(err)
	}
	i.table, err = builder.Build()
	if err != nil {
		i.Close()
		return nil, Fatal(err)
	}
	i.fs = fat.New(fat.WithLogger(i.logger))
	err = i.table.Mount(i.fs)
	if err != nil {
		i.Close()
		return nil, Fatal(err)
	}
	i.logger.Debug("image opened", "filename", filename, "used", i.table.Used, "logs", len(i.table.Segments))
	return &i, nil
}

func (i *Image) Close() error {
	if i.flash != nil {
		err := i.flash.Close()
		if err != nil {
			return Fatal(err)
		}
		i.flash = nil
	}
	return nil
}

func (i *Image) Table() table.Table {
	return i.table
}

func (i *Image) FileSystem() *fat.FileSystem {
	return i.fs
}

func (i *Image) ScanFiles() []FileRecord {
	records := []FileRecord{}
	for _, entry := range i.fs.Entries() {
		records = append(records, FileRecord{
			Name:      entry.Name(),
			ShortName: entry.ShortName(),
			Size:      entry.Size(),
			Cluster:   entry.Cluster(),
			Hidden:    entry.IsHidden(),
			ReadOnly:  entry.IsReadOnly(),
		})
	}
	return records
}

func (i *Image) ReadFile(name string) ([]byte, error) {
	file, err := i.fs.File(name)
	if err != nil {
		return nil, Fatal(err)
	}
	buf, err := io.ReadAll(file.Reader())
	if err != nil {
		return nil, Fatal(err)
	}
	return buf, nil
}

// Export writes the files of the volume into dir. Hidden files are skipped
// unless hidden is set; the padding file is never written.
func (i *Image) Export(afs afero.Fs, dir string, hidden bool) error {
	err := afs.MkdirAll(dir, 0700)
	if err != nil {
		return Fatal(err)
	}
	for _, record := range i.ScanFiles() {
		if record.Name == table.PaddingName {
			continue
		}
		if record.Hidden && !hidden {
			continue
		}
		err := i.exportFile(afs, filepath.Join(dir, record.Name), record)
		if err != nil {
			return Fatal(err)
		}
	}
	return nil
}

func (i *Image) exportFile(afs afero.Fs, dstPathname string, record FileRecord) error {
	src, err := i.fs.File(record.Name)
	if err != nil {
		return Fatal(err)
	}
	dst, err := afs.Create(dstPathname)
	if err != nil {
		return Fatal(err)
	}
	defer dst.Close()
	count, err := io.Copy(dst, src.Reader())
	if err != nil {
		return Fatal(err)
	}
	if count != record.Size {
		return Fatalf("write count mismatch; expected %d, wrote %d", record.Size, count)
	}
	i.logger.Debug("exported", "name", record.Name, "size", count)
	return nil
}
