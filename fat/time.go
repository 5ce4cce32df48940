package fat

import (
	"time"
)

// EncodeDate returns t as a FAT directory date. Years before 1980 clamp to
// the FAT epoch.
func EncodeDate(t time.Time) uint16 {
	year := t.Year() - 1980
	if year < 0 {
		return 1<<5 | 1
	}
	if year > 127 {
		year = 127
	}
	return uint16(year)<<9 | uint16(t.Month())<<5 | uint16(t.Day())
}

// EncodeTime returns t as a FAT directory time with two second resolution.
func EncodeTime(t time.Time) uint16 {
	return uint16(t.Hour())<<11 | uint16(t.Minute())<<5 | uint16(t.Second()/2)
}

// DecodeDateTime reverses EncodeDate and EncodeTime.
func DecodeDateTime(date, tm uint16) time.Time {
	return time.Date(
		int(date>>9)+1980, time.Month(date>>5&0x0f), int(date&0x1f),
		int(tm>>11), int(tm>>5&0x3f), int(tm&0x1f)*2, 0, time.UTC)
}
