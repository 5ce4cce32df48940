package fat

import (
	"encoding/binary"
	"strings"
	"time"

	"github.com/rstms/flashfat"
)

// DirectoryRecordSize is the size of one short name directory record.
const DirectoryRecordSize = 32

// DirectoryEntry is one file of the root directory together with its
// on-disk short name and cluster chain.
type DirectoryEntry struct {
	entry     flashfat.Entry
	name      [11]byte
	shortName string
	cluster   uint32
	clusters  uint32
}

func newDirectoryEntry(entry flashfat.Entry) (*DirectoryEntry, error) {
	if entry.Dir {
		return nil, Fatalf("subdirectories are not supported: '%s'", entry.Name)
	}
	if entry.Size < 0 || entry.MaxSize < entry.Size {
		return nil, Fatalf("invalid size for '%s': size=%d max=%d", entry.Name, entry.Size, entry.MaxSize)
	}
	if entry.MaxSize > 0xffffffff {
		return nil, Fatalf("file too large for FAT: '%s' (%d bytes)", entry.Name, entry.MaxSize)
	}
	shortName, err := ShortName(entry.Name)
	if err != nil {
		return nil, Fatal(err)
	}
	d := &DirectoryEntry{
		entry:     entry,
		name:      encodeShortName(shortName),
		shortName: shortName,
	}
	return d, nil
}

// Name returns the name the entry was created with.
func (d *DirectoryEntry) Name() string {
	return d.entry.Name
}

func (d *DirectoryEntry) ShortName() string {
	return d.shortName
}

func (d *DirectoryEntry) Attr() flashfat.DirectoryAttr {
	attr := d.entry.Attr
	if d.entry.IsReadOnly() {
		attr |= flashfat.AttrReadOnly
	}
	return attr
}

func (d *DirectoryEntry) IsHidden() bool {
	return d.entry.IsHidden()
}

func (d *DirectoryEntry) IsReadOnly() bool {
	return d.entry.IsReadOnly()
}

func (d *DirectoryEntry) Size() int64 {
	return d.entry.Size
}

func (d *DirectoryEntry) ModTime() time.Time {
	return d.entry.Times.Modify
}

// Cluster returns the first cluster of the entry, or 0 when it has none.
func (d *DirectoryEntry) Cluster() uint32 {
	return d.cluster
}

// Clusters returns the length of the entry's cluster chain.
func (d *DirectoryEntry) Clusters() uint32 {
	return d.clusters
}

// Record returns the 32 byte directory record of the entry.
func (d *DirectoryEntry) Record() []byte {
	return encodeRecord(d.name, d.Attr(), d.entry.Times, d.cluster, uint32(d.entry.Size))
}

func encodeRecord(name [11]byte, attr flashfat.DirectoryAttr, times flashfat.Times, cluster, size uint32) []byte {
	buf := make([]byte, DirectoryRecordSize)
	copy(buf[0:11], name[:])
	buf[11] = byte(attr)
	binary.LittleEndian.PutUint16(buf[14:], EncodeTime(times.Create))
	binary.LittleEndian.PutUint16(buf[16:], EncodeDate(times.Create))
	binary.LittleEndian.PutUint16(buf[18:], EncodeDate(times.Access))
	binary.LittleEndian.PutUint16(buf[20:], uint16(cluster>>16))
	binary.LittleEndian.PutUint16(buf[22:], EncodeTime(times.Modify))
	binary.LittleEndian.PutUint16(buf[24:], EncodeDate(times.Modify))
	binary.LittleEndian.PutUint16(buf[26:], uint16(cluster))
	binary.LittleEndian.PutUint32(buf[28:], size)
	return buf
}

// DecodeRecordName returns the dotted short name held in a directory record.
func DecodeRecordName(record []byte) string {
	base := strings.TrimRight(string(record[0:8]), " ")
	ext := strings.TrimRight(string(record[8:11]), " ")
	if ext == "" {
		return base
	}
	return base + "." + ext
}
