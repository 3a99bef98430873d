package fatnav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/aligator/fatnav/checkpoint"
)

// These errors may occur while parsing the boot sector.
var (
	ErrImageTooSmall = errors.New("image is smaller than one boot sector")
)

// minImageSize is the size of one boot sector. Almost all FAT filesystems
// use a sector size of 512 and anything shorter cannot even hold the
// geometry fields.
const minImageSize = 512

// Geometry locates every region of a FAT16 volume as byte offsets into the
// image. It is derived once from the boot sector and never changes.
//
// Note that the boot sector is not validated beyond the image length.
// A malformed boot sector yields nonsensical but non-crashing offsets,
// callers needing robustness have to validate the image externally.
type Geometry struct {
	ReservedSectors   uint16
	BytesPerSector    uint16
	SectorsPerCluster uint8

	FATOffset  int64
	FATSectors uint16
	FATCopies  uint8

	RootDirOffset  int64
	RootDirEntries uint16

	DataOffset int64
}

// parseGeometry decodes the boot sector of the given image.
func parseGeometry(img Image) (Geometry, error) {
	if len(img) < minImageSize {
		return Geometry{}, checkpoint.Wrap(
			fmt.Errorf("image size %d, minimum %d", len(img), minImageSize),
			ErrImageTooSmall,
		)
	}

	var bs bootSector
	if err := binary.Read(bytes.NewReader(img), binary.LittleEndian, &bs); err != nil {
		return Geometry{}, checkpoint.From(err)
	}

	geo := Geometry{
		ReservedSectors:   bs.ReservedSectorCount,
		BytesPerSector:    bs.BytesPerSector,
		SectorsPerCluster: bs.SectorsPerCluster,
		FATSectors:        bs.FATSize16,
		FATCopies:         bs.NumFATs,
		RootDirEntries:    bs.RootEntryCount,
	}

	// The FAT area starts right behind the reserved sectors, the root
	// directory behind all FAT copies and the data area behind the fixed
	// size root directory.
	geo.FATOffset = int64(geo.ReservedSectors) * int64(geo.BytesPerSector)
	geo.RootDirOffset = geo.FATOffset +
		int64(geo.FATSectors)*int64(geo.FATCopies)*int64(geo.BytesPerSector)
	geo.DataOffset = geo.RootDirOffset + geo.RootDirSize()

	return geo, nil
}

// RootDirSize returns the size of the fixed root directory area in bytes.
func (g Geometry) RootDirSize() int64 {
	return int64(g.RootDirEntries) * directorySlotSize
}

// ClusterSize returns the size of one cluster in bytes.
func (g Geometry) ClusterSize() int64 {
	return int64(g.SectorsPerCluster) * int64(g.BytesPerSector)
}

// ClusterOffset returns the byte offset of the given cluster in the data
// area. Cluster numbering begins at 2 by FAT convention.
func (g Geometry) ClusterOffset(cluster uint16) int64 {
	return g.DataOffset + int64(cluster-2)*g.ClusterSize()
}

// maxChainLength returns the number of 16 bit entries the FAT area can hold.
// No valid cluster chain can be longer than that, so it bounds the chain
// walk on corrupt or cyclic tables.
func (g Geometry) maxChainLength() int {
	return int(g.FATSectors) * int(g.BytesPerSector) / 2
}
