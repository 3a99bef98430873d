package fatnav

import (
	"errors"
	"os"
	"strings"
	"syscall"
	"time"

	"github.com/aligator/fatnav/checkpoint"
	"github.com/spf13/afero"
)

// These errors may occur while using the volume through the afero layer.
var (
	ErrReadOnly = errors.New("the volume is read only")
)

// FatFs exposes a FAT16 volume as a read only afero.Fs.
// Paths are "/" separated sequences of 8.3 display names ("TEST/ONE.TXT"),
// matched case-sensitively. All modifying operations fail with ErrReadOnly.
type FatFs struct {
	nav *Navigator
}

// NewFs opens the given bytes as a FAT16 volume wrapped into an afero.Fs.
func NewFs(image []byte) (*FatFs, error) {
	nav, err := New(image)
	if err != nil {
		return nil, checkpoint.From(err)
	}
	return &FatFs{nav: nav}, nil
}

// rootEntry is the synthetic entry for the root directory itself. Its start
// cluster of 0 routes directory reads to the fixed root area, the same way
// ".." entries of first-level subdirectories do.
func rootEntry() Entry {
	return Entry{
		Name:       ".",
		Attributes: AttrDirectory,
	}
}

// resolve walks the given path segment by segment from the root and returns
// the entry of the last segment.
func (f *FatFs) resolve(path string) (Entry, error) {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" || trimmed == "." {
		return rootEntry(), nil
	}

	nav, err := f.nav.Root()
	if err != nil {
		return Entry{}, checkpoint.From(err)
	}

	segments := strings.Split(trimmed, "/")
	for i, segment := range segments {
		entry, ok := findEntry(nav.List(), segment)
		if !ok {
			return Entry{}, checkpoint.From(os.ErrNotExist)
		}

		if i == len(segments)-1 {
			return entry, nil
		}

		if !entry.Attributes.Directory() {
			return Entry{}, checkpoint.From(syscall.ENOTDIR)
		}
		if _, err := nav.ChangeDirectory(entry.Name); err != nil {
			return Entry{}, checkpoint.From(err)
		}
	}

	// Unreachable, the loop always returns on the last segment.
	return Entry{}, checkpoint.From(os.ErrNotExist)
}

func findEntry(entries []Entry, name string) (Entry, bool) {
	for _, entry := range entries {
		if entry.DisplayName() == name {
			return entry, true
		}
	}
	return Entry{}, false
}

// readFileAt reads up to readSize content bytes of the given file entry
// starting at offset. Only the clusters intersecting the requested range are
// touched. Reads past the declared file size are cut short.
func (f *FatFs) readFileAt(entry Entry, offset, readSize int64) ([]byte, error) {
	chain, err := resolveChain(f.nav.img, f.nav.geo, entry.StartCluster)
	if err != nil {
		return nil, checkpoint.From(err)
	}

	end := offset + readSize
	if end > int64(entry.Size) {
		end = int64(entry.Size)
	}
	if end <= offset {
		return nil, nil
	}

	clusterSize := f.nav.geo.ClusterSize()
	result := make([]byte, 0, end-offset)

	pos := int64(0) // first content byte held by the current cluster
	for _, cluster := range chain {
		clusterEnd := pos + clusterSize

		lo := offset
		if pos > lo {
			lo = pos
		}
		hi := end
		if clusterEnd < hi {
			hi = clusterEnd
		}

		if hi > lo {
			payload, err := f.nav.img.Slice(f.nav.geo.ClusterOffset(cluster)+(lo-pos), hi-lo)
			if err != nil {
				return nil, checkpoint.From(err)
			}
			result = append(result, payload...)
		}

		pos = clusterEnd
		if pos >= end {
			break
		}
	}

	if int64(len(result)) < end-offset {
		return nil, checkpoint.Wrap(errors.New("chain ends inside of the requested range"), ErrTruncatedFile)
	}

	return result, nil
}

// readDirEntries reads the raw entries of the given directory entry,
// including the "." and ".." slots.
func (f *FatFs) readDirEntries(entry Entry) ([]Entry, error) {
	extents, err := f.nav.directoryExtents(entry)
	if err != nil {
		return nil, checkpoint.From(err)
	}
	return f.nav.readExtents(extents)
}

func (f *FatFs) Open(name string) (afero.File, error) {
	entry, err := f.resolve(name)
	if err != nil {
		return nil, &os.PathError{Op: "open", Path: name, Err: err}
	}

	return &File{
		fs:    f,
		path:  name,
		entry: entry,
	}, nil
}

func (f *FatFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	if flag&(os.O_WRONLY|os.O_RDWR|os.O_APPEND|os.O_CREATE|os.O_TRUNC) != 0 {
		return nil, checkpoint.Wrap(syscall.EPERM, ErrReadOnly)
	}
	return f.Open(name)
}

func (f *FatFs) Stat(name string) (os.FileInfo, error) {
	entry, err := f.resolve(name)
	if err != nil {
		return nil, &os.PathError{Op: "stat", Path: name, Err: err}
	}
	return entry.FileInfo(), nil
}

func (f *FatFs) Name() string {
	return "fatnav"
}

func (f *FatFs) Create(name string) (afero.File, error) {
	return nil, checkpoint.Wrap(syscall.EPERM, ErrReadOnly)
}

func (f *FatFs) Mkdir(name string, perm os.FileMode) error {
	return checkpoint.Wrap(syscall.EPERM, ErrReadOnly)
}

func (f *FatFs) MkdirAll(path string, perm os.FileMode) error {
	return checkpoint.Wrap(syscall.EPERM, ErrReadOnly)
}

func (f *FatFs) Remove(name string) error {
	return checkpoint.Wrap(syscall.EPERM, ErrReadOnly)
}

func (f *FatFs) RemoveAll(path string) error {
	return checkpoint.Wrap(syscall.EPERM, ErrReadOnly)
}

func (f *FatFs) Rename(oldname, newname string) error {
	return checkpoint.Wrap(syscall.EPERM, ErrReadOnly)
}

func (f *FatFs) Chmod(name string, mode os.FileMode) error {
	return checkpoint.Wrap(syscall.EPERM, ErrReadOnly)
}

func (f *FatFs) Chown(name string, uid, gid int) error {
	return checkpoint.Wrap(syscall.EPERM, ErrReadOnly)
}

func (f *FatFs) Chtimes(name string, atime time.Time, mtime time.Time) error {
	return checkpoint.Wrap(syscall.EPERM, ErrReadOnly)
}
