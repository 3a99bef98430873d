package fatnav

import (
	"os"
	"time"
)

// FileInfo adapts the entry to os.FileInfo.
func (e Entry) FileInfo() os.FileInfo {
	return entryFileInfo{e}
}

type entryFileInfo struct {
	entry Entry
}

func (e entryFileInfo) Name() string {
	return e.entry.DisplayName()
}

func (e entryFileInfo) Size() int64 {
	return int64(e.entry.Size)
}

func (e entryFileInfo) Mode() os.FileMode {
	if e.IsDir() {
		return os.ModeDir
	}
	return 0
}

// ModTime combines the creation date and time stamps of the entry.
// Navigation only decodes the creation stamps, so they stand in for the
// modification time here.
func (e entryFileInfo) ModTime() time.Time {
	date := ParseDate(e.entry.CreateDate)
	clock := ParseTime(e.entry.CreateTime)

	// An invalid date yields the zero time. The clock cannot be checked the
	// same way because 00:00:00 is perfectly valid.
	if date.IsZero() {
		return time.Time{}
	}

	return time.Date(date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), clock.Second(), 0, time.UTC)
}

func (e entryFileInfo) IsDir() bool {
	return e.entry.Attributes.Directory()
}

func (e entryFileInfo) Sys() interface{} {
	return e.entry
}
