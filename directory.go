package flashfat

import (
	"time"
)

type DirectoryAttr uint8

const (
	AttrReadOnly  DirectoryAttr = 0x01
	AttrHidden    DirectoryAttr = 0x02
	AttrSystem    DirectoryAttr = 0x04
	AttrVolumeId  DirectoryAttr = 0x08
	AttrDirectory DirectoryAttr = 0x10
	AttrArchive   DirectoryAttr = 0x20
	AttrLongName                = AttrReadOnly | AttrHidden | AttrSystem | AttrVolumeId
)

// Times holds the create, modify and access timestamps reported for an entry.
type Times struct {
	Create time.Time
	Modify time.Time
	Access time.Time
}

// CMA returns a Times with all three timestamps set to t.
func CMA(t time.Time) Times {
	return Times{Create: t, Modify: t, Access: t}
}

// WriteFunc receives host writes for an entry. Entries without one are
// read-only.
type WriteFunc func(src []byte, off int64) int

// Entry describes one file or directory of the virtual volume. Entries carry
// no file data themselves; reads are served on demand through the Handle.
type Entry struct {
	Name    string
	Dir     bool
	Attr    DirectoryAttr
	Level   int
	Offset  int64
	Size    int64
	MaxSize int64
	Times   Times
	Handle  Handle
	Write   WriteFunc
}

func (e *Entry) IsHidden() bool {
	return e.Attr&AttrHidden == AttrHidden
}

func (e *Entry) IsReadOnly() bool {
	return e.Write == nil
}

// CopyAt fills dest with entry content starting at off and returns the
// number of bytes copied. Entries without a handle copy nothing.
func (e *Entry) CopyAt(dest []byte, off int64) int {
	switch h := e.Handle.(type) {
	case ConstantBuffer:
		return h.copyAt(dest, off)
	case FlashRange:
		return h.copyAt(dest, off)
	}
	return 0
}
