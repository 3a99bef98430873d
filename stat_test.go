package fatnav

import (
	"os"
	"testing"
	"time"
)

func TestEntry_FileInfo(t *testing.T) {
	tests := []struct {
		name        string
		entry       Entry
		wantName    string
		wantSize    int64
		wantMode    os.FileMode
		wantIsDir   bool
		wantModTime time.Time
	}{
		{
			name: "regular file with creation stamps",
			entry: Entry{
				Name:       "ONE",
				Extension:  "TXT",
				Attributes: AttrArchive,
				CreateTime: testCreateTime,
				CreateDate: testCreateDate,
				Size:       4,
			},
			wantName:    "ONE.TXT",
			wantSize:    4,
			wantMode:    0,
			wantModTime: time.Date(2024, 7, 9, 12, 30, 10, 0, time.UTC),
		},
		{
			name: "directory",
			entry: Entry{
				Name:       "TEST",
				Attributes: AttrDirectory,
			},
			wantName:  "TEST",
			wantMode:  os.ModeDir,
			wantIsDir: true,
		},
		{
			name: "invalid creation date yields the zero time",
			entry: Entry{
				Name:       "X",
				Attributes: AttrArchive,
				CreateTime: testCreateTime,
				CreateDate: 0,
			},
			wantName: "X",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := tt.entry.FileInfo()

			if got := info.Name(); got != tt.wantName {
				t.Errorf("FileInfo.Name() = %q, want %q", got, tt.wantName)
			}
			if got := info.Size(); got != tt.wantSize {
				t.Errorf("FileInfo.Size() = %v, want %v", got, tt.wantSize)
			}
			if got := info.Mode(); got != tt.wantMode {
				t.Errorf("FileInfo.Mode() = %v, want %v", got, tt.wantMode)
			}
			if got := info.IsDir(); got != tt.wantIsDir {
				t.Errorf("FileInfo.IsDir() = %v, want %v", got, tt.wantIsDir)
			}
			if got := info.ModTime(); !got.Equal(tt.wantModTime) {
				t.Errorf("FileInfo.ModTime() = %v, want %v", got, tt.wantModTime)
			}
			if _, ok := info.Sys().(Entry); !ok {
				t.Errorf("FileInfo.Sys() is no Entry")
			}
		})
	}
}
