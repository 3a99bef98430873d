package fatnav

import (
	"errors"
	"fmt"
	"io"
	"io/ioutil"

	"github.com/aligator/fatnav/checkpoint"
	"github.com/spf13/afero"
)

// These errors may occur while navigating the volume.
var (
	ErrNotADirectory = errors.New("there is no such directory")
	ErrNotAFile      = errors.New("there is no such file")
)

// Navigator walks the directory tree of one FAT16 image. It keeps the
// entries of the current directory as its only state.
//
// A Navigator must not be used from multiple goroutines at once. The
// underlying Image is never mutated, so several Navigator instances may
// share it for independent navigation.
type Navigator struct {
	img     Image
	geo     Geometry
	label   string
	entries []Entry
}

// New opens the given bytes as a FAT16 volume and returns a Navigator
// positioned at the root directory.
func New(image []byte) (*Navigator, error) {
	img := Image(image)

	geo, err := parseGeometry(img)
	if err != nil {
		return nil, checkpoint.From(err)
	}

	entries, err := readDirectory(img, geo.RootDirOffset, int(geo.RootDirEntries))
	if err != nil {
		return nil, checkpoint.From(err)
	}

	nav := &Navigator{
		img:     img,
		geo:     geo,
		entries: entries,
	}

	// The volume label is stored as a root entry carrying the volume_id
	// attribute.
	for _, entry := range entries {
		if entry.Attributes.VolumeID() {
			nav.label = entry.Name
			break
		}
	}

	return nav, nil
}

// NewFromReader reads the whole image from r and opens it like New.
func NewFromReader(r io.Reader) (*Navigator, error) {
	image, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, checkpoint.From(err)
	}
	return New(image)
}

// NewFromFile loads the image at the given path from any afero filesystem
// and opens it like New.
func NewFromFile(fsys afero.Fs, path string) (*Navigator, error) {
	image, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, checkpoint.From(err)
	}
	return New(image)
}

// Root returns a new Navigator over the same image, positioned at the root
// directory. The root entries are read fresh, nothing is cached.
func (n *Navigator) Root() (*Navigator, error) {
	entries, err := readDirectory(n.img, n.geo.RootDirOffset, int(n.geo.RootDirEntries))
	if err != nil {
		return nil, checkpoint.From(err)
	}

	return &Navigator{
		img:     n.img,
		geo:     n.geo,
		label:   n.label,
		entries: entries,
	}, nil
}

// Geometry returns the volume geometry derived from the boot sector.
func (n *Navigator) Geometry() Geometry {
	return n.geo
}

// Label returns the volume label, if the root directory carries one.
func (n *Navigator) Label() string {
	return n.label
}

// List returns the entries of the current directory.
// The returned slice is owned by the Navigator and must not be modified.
func (n *Navigator) List() []Entry {
	return n.entries
}

// ChangeDirectory descends into the named directory of the current one and
// returns its entries. The name is matched case-sensitively against the
// trimmed 8 character name field, one segment at a time ("." and ".." are
// ordinary entries of the directory itself).
//
// It fails with ErrNotADirectory if no directory entry with that name
// exists. The current entries only change on success.
func (n *Navigator) ChangeDirectory(name string) ([]Entry, error) {
	for _, entry := range n.entries {
		if !entry.Attributes.Directory() || entry.Name != name {
			continue
		}

		extents, err := n.directoryExtents(entry)
		if err != nil {
			return nil, checkpoint.From(err)
		}

		entries, err := n.readExtents(extents)
		if err != nil {
			return nil, checkpoint.From(err)
		}

		n.entries = entries
		return n.entries, nil
	}

	return nil, checkpoint.Wrap(fmt.Errorf("name %q", name), ErrNotADirectory)
}

// OpenFile reads the named regular file of the current directory.
// Only entries carrying the archive or read only attribute qualify, a
// directory sharing the name is not selected.
//
// It fails with ErrNotAFile if no such entry exists and with
// ErrTruncatedFile if the cluster chain cannot cover the declared size.
func (n *Navigator) OpenFile(name string) (FileContent, error) {
	for _, entry := range n.entries {
		if !entry.Attributes.IsRegularFile() || entry.Name != name {
			continue
		}

		chain, err := resolveChain(n.img, n.geo, entry.StartCluster)
		if err != nil {
			return FileContent{}, checkpoint.From(err)
		}

		data, err := assembleFile(n.img, n.geo, chain, entry.Size)
		if err != nil {
			return FileContent{}, checkpoint.From(err)
		}

		return FileContent{
			Name:      entry.Name,
			Extension: entry.Extension,
			Size:      entry.Size,
			Bytes:     data,
		}, nil
	}

	return FileContent{}, checkpoint.Wrap(fmt.Errorf("name %q", name), ErrNotAFile)
}

// extent is one contiguous byte range holding directory slots. Directories
// are stored in two different ways: the root directory is a fixed size area
// while subdirectories are cluster-chained. Resolving both to extents first
// keeps the slot decoding location-agnostic.
type extent struct {
	offset int64
	slots  int
}

// directoryExtents resolves the storage of the given directory entry.
// A start cluster of 0 points back at the fixed root directory area. This
// is how ".." entries of first-level subdirectories reference the root,
// which has no cluster chain.
func (n *Navigator) directoryExtents(entry Entry) ([]extent, error) {
	chain, err := resolveChain(n.img, n.geo, entry.StartCluster)
	if err != nil {
		return nil, checkpoint.From(err)
	}

	if len(chain) == 0 {
		return []extent{{offset: n.geo.RootDirOffset, slots: int(n.geo.RootDirEntries)}}, nil
	}

	slotsPerCluster := int(n.geo.ClusterSize() / directorySlotSize)
	extents := make([]extent, len(chain))
	for i, cluster := range chain {
		extents[i] = extent{offset: n.geo.ClusterOffset(cluster), slots: slotsPerCluster}
	}
	return extents, nil
}

// readExtents decodes every extent as a directory page and concatenates the
// entries in extent order.
func (n *Navigator) readExtents(extents []extent) ([]Entry, error) {
	var entries []Entry
	for _, ext := range extents {
		pageEntries, err := readDirectory(n.img, ext.offset, ext.slots)
		if err != nil {
			return nil, checkpoint.From(err)
		}
		entries = append(entries, pageEntries...)
	}
	return entries, nil
}
