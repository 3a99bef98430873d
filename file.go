package fatnav

import (
	"errors"
	"fmt"
	"io"
	"os"
	"syscall"

	"github.com/aligator/fatnav/checkpoint"
	"github.com/spf13/afero"
)

// These errors may occur while processing a file.
var (
	ErrReadFile = errors.New("could not read file completely")
	ErrSeekFile = errors.New("could not seek inside of the file")
	ErrReadDir  = errors.New("could not read the directory")
)

// fileSource provides all reads a File needs from the volume.
// It mainly exists to be able to mock the filesystem in tests.
// Generated mock using mockgen:
//  mockgen -source=file.go -destination=file_mock.go -package fatnav
type fileSource interface {
	readFileAt(entry Entry, offset, readSize int64) ([]byte, error)
	readDirEntries(entry Entry) ([]Entry, error)
}

// File is an open file or directory of the volume, usable as afero.File.
// It is read only, all write operations fail with ErrReadOnly.
type File struct {
	fs    fileSource
	path  string
	entry Entry

	offset int64

	// dir holds the listing once Readdir was called, so paged Readdir calls
	// stay consistent.
	dir       []os.FileInfo
	dirOffset int
}

func (f *File) Close() error {
	f.fs = nil
	f.path = ""
	f.entry = Entry{}
	f.offset = 0
	f.dir = nil
	f.dirOffset = 0

	return nil
}

func (f *File) Read(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}

	if f.offset >= int64(f.entry.Size) {
		return 0, io.EOF
	}

	data, err := f.fs.readFileAt(f.entry, f.offset, int64(len(p)))
	if data != nil {
		copy(p, data)
	}
	f.offset += int64(len(data))

	if err != nil {
		return len(data), checkpoint.Wrap(err, ErrReadFile)
	}

	return len(data), nil
}

func (f *File) ReadAt(p []byte, off int64) (n int, err error) {
	if off < 0 {
		return 0, checkpoint.Wrap(syscall.EINVAL, ErrReadFile)
	}
	if off >= int64(f.entry.Size) {
		return 0, io.EOF
	}

	data, err := f.fs.readFileAt(f.entry, off, int64(len(p)))
	if data != nil {
		copy(p, data)
	}

	if err != nil {
		return len(data), checkpoint.Wrap(err, ErrReadFile)
	}

	// ReadAt has to report a short read.
	if len(data) < len(p) {
		return len(data), io.EOF
	}

	return len(data), nil
}

// Seek jumps to a specific offset in the file. This affects all following
// Read calls but not ReadAt.
// May return a syscall.EINVAL error if the whence value is invalid and an
// afero.ErrOutOfRange error if the offset is out of range.
func (f *File) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case io.SeekStart:
	case io.SeekCurrent:
		offset = f.offset + offset
	case io.SeekEnd:
		offset = int64(f.entry.Size) + offset
	default:
		return 0, checkpoint.Wrap(ErrSeekFile, fmt.Errorf("%w, whence: %v", syscall.EINVAL, whence))
	}

	if offset < 0 || offset > int64(f.entry.Size) {
		return 0, checkpoint.Wrap(afero.ErrOutOfRange, fmt.Errorf("%w, offset: %v", ErrSeekFile, offset))
	}

	f.offset = offset
	return offset, nil
}

func (f *File) Name() string {
	return f.entry.DisplayName()
}

// Readdir reads the contents of the directory in directory order.
// The "." and ".." slots and the volume label entry are skipped, they are
// bookkeeping of the on-disk format, not children.
// May return syscall.ENOTDIR if the File is no directory.
func (f *File) Readdir(count int) ([]os.FileInfo, error) {
	if !f.entry.Attributes.Directory() {
		return nil, checkpoint.Wrap(syscall.ENOTDIR, ErrReadDir)
	}

	if f.dir == nil {
		entries, err := f.fs.readDirEntries(f.entry)
		if err != nil {
			return nil, checkpoint.Wrap(err, ErrReadDir)
		}

		f.dir = make([]os.FileInfo, 0, len(entries))
		for _, entry := range entries {
			if entry.Name == "." || entry.Name == ".." || entry.Attributes.VolumeID() {
				continue
			}
			f.dir = append(f.dir, entry.FileInfo())
		}
	}

	rest := f.dir[f.dirOffset:]

	if count <= 0 {
		f.dirOffset = len(f.dir)
		return rest, nil
	}

	if len(rest) == 0 {
		return nil, io.EOF
	}
	if count > len(rest) {
		count = len(rest)
	}
	f.dirOffset += count
	return rest[:count], nil
}

func (f *File) Readdirnames(count int) ([]string, error) {
	content, err := f.Readdir(count)
	if err != nil {
		return nil, checkpoint.Wrap(err, ErrReadDir)
	}

	names := make([]string, len(content))
	for i, entry := range content {
		names[i] = entry.Name()
	}

	return names, nil
}

func (f *File) Stat() (os.FileInfo, error) {
	return f.entry.FileInfo(), nil
}

func (f *File) Write(p []byte) (n int, err error) {
	return 0, checkpoint.Wrap(syscall.EPERM, ErrReadOnly)
}

func (f *File) WriteAt(p []byte, off int64) (n int, err error) {
	return 0, checkpoint.Wrap(syscall.EPERM, ErrReadOnly)
}

func (f *File) WriteString(s string) (ret int, err error) {
	return 0, checkpoint.Wrap(syscall.EPERM, ErrReadOnly)
}

func (f *File) Truncate(size int64) error {
	return checkpoint.Wrap(syscall.EPERM, ErrReadOnly)
}

func (f *File) Sync() error {
	return nil
}
