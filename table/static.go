package table

import (
	_ "embed"

	"github.com/rstms/flashfat"
)

//go:embed assets/autorun.inf
var autorunFile []byte

//go:embed assets/icon.ico
var iconFile []byte

//go:embed assets/readme.txt
var readmeFile []byte

const readmeMaxSize = 1 * MB

const PaddingName = "PADDING.TXT"

// AppendedEntryCount is the aggregate entry plus the padding entry.
const AppendedEntryCount = 2

// predefinedEntries returns the root directory followed by the enabled
// static files.
func (c Config) predefinedEntries(times flashfat.Times) []flashfat.Entry {
	entries := []flashfat.Entry{
		{Dir: true, Times: times},
	}
	if c.Autorun {
		entries = append(entries, flashfat.NewConstantEntry("autorun.inf", flashfat.AttrHidden, autorunFile, 0, times))
	}
	if c.Icon {
		entries = append(entries, flashfat.NewConstantEntry("icon.ico", flashfat.AttrHidden, iconFile, 0, times))
	}
	if c.Readme {
		entries = append(entries, flashfat.NewConstantEntry("readme.txt", 0, readmeFile, readmeMaxSize, times))
	}
	return entries
}
