package table

import (
	"github.com/rstms/flashfat"
	"github.com/rstms/flashfat/scan"
)

// Table is the complete, ordered entry list of one virtual volume. It is not
// modified after Build returns it.
type Table struct {
	Label    string
	DiskSize int64
	Used     int64
	Segments []scan.Segment
	Entries  []flashfat.Entry

	predefined int
}

// TotalSize returns the sum of all declared entry sizes.
func (t Table) TotalSize() int64 {
	var total int64
	for _, entry := range t.Entries {
		total += entry.Size
	}
	return total
}

func (t Table) Root() flashfat.Entry {
	return t.Entries[0]
}

// Logs returns the per-segment log entries.
func (t Table) Logs() []flashfat.Entry {
	return t.Entries[t.predefined : t.predefined+len(t.Segments)]
}

// Aggregate returns the entry spanning all used flash, if any log was found.
func (t Table) Aggregate() (flashfat.Entry, bool) {
	if len(t.Segments) == 0 {
		return flashfat.Entry{}, false
	}
	return t.Entries[t.predefined+len(t.Segments)], true
}

func (t Table) Padding() flashfat.Entry {
	return t.Entries[len(t.Entries)-1]
}

// Mount hands the table to engine.
func (t Table) Mount(engine flashfat.Engine) error {
	err := engine.Initialize(t.Label, t.Entries)
	if err != nil {
		return Fatal(err)
	}
	return nil
}
