package fatnav

import (
	"bytes"
	"encoding/binary"
	"strings"

	"github.com/aligator/fatnav/checkpoint"
)

// Attribute bits of a directory entry.
const (
	AttrReadOnly  = 0x01
	AttrHidden    = 0x02
	AttrSystem    = 0x04
	AttrVolumeID  = 0x08
	AttrDirectory = 0x10
	AttrArchive   = 0x20
)

// Attributes is the decoded attribute bitmask of a directory entry,
// modeled as a set of flags.
type Attributes uint8

func (a Attributes) ReadOnly() bool  { return a&AttrReadOnly != 0 }
func (a Attributes) Hidden() bool    { return a&AttrHidden != 0 }
func (a Attributes) System() bool    { return a&AttrSystem != 0 }
func (a Attributes) VolumeID() bool  { return a&AttrVolumeID != 0 }
func (a Attributes) Directory() bool { return a&AttrDirectory != 0 }
func (a Attributes) Archive() bool   { return a&AttrArchive != 0 }

// IsRegularFile reports whether the entry describes file data.
// FAT has no explicit "file" bit, entries carrying the archive or the
// read only attribute are treated as regular files.
func (a Attributes) IsRegularFile() bool {
	return a.Archive() || a.ReadOnly()
}

func (a Attributes) String() string {
	names := make([]string, 0, 6)
	if a.ReadOnly() {
		names = append(names, "read_only")
	}
	if a.Hidden() {
		names = append(names, "hidden")
	}
	if a.System() {
		names = append(names, "system")
	}
	if a.VolumeID() {
		names = append(names, "volume_id")
	}
	if a.Directory() {
		names = append(names, "directory")
	}
	if a.Archive() {
		names = append(names, "archive")
	}
	return strings.Join(names, "|")
}

// Entry is one decoded directory entry. It is constructed fresh on every
// directory read and never written back, the volume is read only.
type Entry struct {
	// Name is the space-trimmed 8 character name field.
	Name string
	// Extension is the space-trimmed 3 character extension field.
	Extension string

	Attributes Attributes

	// CreateTime and CreateDate are kept as their raw 16 bit on-disk values.
	// ParseTime and ParseDate decode them if needed.
	CreateTime uint16
	CreateDate uint16

	StartCluster uint16
	Size         uint32
}

// DisplayName returns the usual "NAME.EXT" rendering of the 8.3 name.
// The dot is omitted for entries without an extension.
func (e Entry) DisplayName() string {
	if e.Extension == "" {
		return e.Name
	}
	return e.Name + "." + e.Extension
}

// decodeEntry decodes the 32 byte directory slot at the given offset.
func decodeEntry(img Image, offset int64) (Entry, error) {
	slot, err := img.Slice(offset, directorySlotSize)
	if err != nil {
		return Entry{}, checkpoint.From(err)
	}

	var header entryHeader
	if err := binary.Read(bytes.NewReader(slot), binary.LittleEndian, &header); err != nil {
		return Entry{}, checkpoint.From(err)
	}

	return Entry{
		Name:         strings.TrimRight(string(header.Name[:]), " "),
		Extension:    strings.TrimRight(string(header.Ext[:]), " "),
		Attributes:   Attributes(header.Attribute),
		CreateTime:   header.CreateTime,
		CreateDate:   header.CreateDate,
		StartCluster: header.FirstClusterLO,
		Size:         header.FileSize,
	}, nil
}

// readDirectory decodes consecutive directory slots starting at offset until
// either a slot starting with the end-of-directory marker or maxSlots is
// reached. maxSlots bounds the scan to the directory region, so a completely
// filled directory page does not leak into the bytes behind it.
func readDirectory(img Image, offset int64, maxSlots int) ([]Entry, error) {
	var entries []Entry
	for i := 0; i < maxSlots; i++ {
		first, err := img.U8(offset)
		if err != nil {
			return nil, checkpoint.From(err)
		}
		if first == endOfDirectory {
			break
		}

		entry, err := decodeEntry(img, offset)
		if err != nil {
			return nil, checkpoint.From(err)
		}

		entries = append(entries, entry)
		offset += directorySlotSize
	}
	return entries, nil
}
