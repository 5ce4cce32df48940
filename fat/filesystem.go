package fat

import (
	"strings"

	"github.com/charmbracelet/log"
	"github.com/rstms/flashfat"
)

// DefaultClusterSize is used when no cluster size option is given.
const DefaultClusterSize = 4096

// FileSystem is a read-only FAT view over an entry table. Entries are laid
// out as contiguous cluster chains in table order, starting at cluster 2.
type FileSystem struct {
	clusterSize int64
	logger      *log.Logger

	label    string
	root     flashfat.Entry
	entries  []*DirectoryEntry
	clusters uint32
}

// ensure FileSystem implements flashfat.Engine
var _ flashfat.Engine = (*FileSystem)(nil)

type Option func(*FileSystem)

func WithClusterSize(size int64) Option {
	return func(f *FileSystem) {
		f.clusterSize = size
	}
}

func WithLogger(logger *log.Logger) Option {
	return func(f *FileSystem) {
		f.logger = logger
	}
}

// New returns an empty FileSystem; Initialize loads the entry table.
func New(opts ...Option) *FileSystem {
	f := &FileSystem{
		clusterSize: DefaultClusterSize,
		logger:      log.Default(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Initialize replaces the volume contents with entries. entries[0] must be
// the root directory.
func (f *FileSystem) Initialize(label string, entries []flashfat.Entry) error {
	if f.clusterSize <= 0 || f.clusterSize%512 != 0 {
		return Fatalf("invalid cluster size: %d", f.clusterSize)
	}
	if _, err := encodeLabel(label); err != nil {
		return Fatal(err)
	}
	if len(entries) == 0 || !entries[0].Dir || entries[0].Size != 0 {
		return Fatalf("first entry must be the empty root directory")
	}

	dirEntries := make([]*DirectoryEntry, 0, len(entries)-1)
	used := make(map[string]bool, len(entries))
	next := uint32(2)
	for _, entry := range entries[1:] {
		d, err := newDirectoryEntry(entry)
		if err != nil {
			return Fatal(err)
		}
		if used[d.shortName] {
			return Fatalf("name already exists: %s", d.shortName)
		}
		used[d.shortName] = true
		d.clusters = uint32((entry.MaxSize + f.clusterSize - 1) / f.clusterSize)
		if d.clusters > 0 {
			d.cluster = next
			next += d.clusters
		}
		dirEntries = append(dirEntries, d)
	}

	f.label = strings.ToUpper(label)
	f.root = entries[0]
	f.entries = dirEntries
	f.clusters = next - 2
	f.logger.Debug("volume initialized", "label", f.label, "files", len(dirEntries), "clusters", f.clusters)
	return nil
}

func (f *FileSystem) Label() string {
	return f.label
}

func (f *FileSystem) ClusterSize() int64 {
	return f.clusterSize
}

// ClusterCount returns the number of data clusters allocated to files.
func (f *FileSystem) ClusterCount() uint32 {
	return f.clusters
}

func (f *FileSystem) Entries() []*DirectoryEntry {
	return f.entries
}

// Entry looks up a file by name, ignoring case. It returns nil if absent.
func (f *FileSystem) Entry(name string) *DirectoryEntry {
	name = strings.ToUpper(name)
	for _, entry := range f.entries {
		if strings.ToUpper(entry.Name()) == name || entry.ShortName() == name {
			return entry
		}
	}
	return nil
}

func (f *FileSystem) File(name string) (*File, error) {
	entry := f.Entry(name)
	if entry == nil {
		return nil, Fatalf("not found: %s", name)
	}
	return &File{entry: entry}, nil
}

// RootRecords returns the root directory: the volume label record followed
// by one record per file.
func (f *FileSystem) RootRecords() []byte {
	label, _ := encodeLabel(f.label)
	buf := make([]byte, 0, DirectoryRecordSize*(len(f.entries)+1))
	buf = append(buf, encodeRecord(label, flashfat.AttrVolumeId, f.root.Times, 0, 0)...)
	for _, entry := range f.entries {
		buf = append(buf, entry.Record()...)
	}
	return buf
}
