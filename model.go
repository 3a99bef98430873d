// File model contains the structs which match the direct on-disk structures
// of the FAT16 filesystem.

package fatnav

// bootSector matches the beginning of sector 0 up to and including the
// 16 bit FAT size. Everything behind that is not needed for navigation.
type bootSector struct {
	JumpBoot            [3]byte
	OEMName             [8]byte
	BytesPerSector      uint16
	SectorsPerCluster   byte
	ReservedSectorCount uint16
	NumFATs             byte
	RootEntryCount      uint16
	TotalSectors16      uint16
	Media               byte
	FATSize16           uint16
}

// entryHeader matches one 32 byte directory slot.
type entryHeader struct {
	Name            [8]byte
	Ext             [3]byte
	Attribute       byte
	NTReserved      byte
	CreateTimeTenth byte
	CreateTime      uint16
	CreateDate      uint16
	LastAccessDate  uint16
	FirstClusterHI  uint16
	WriteTime       uint16
	WriteDate       uint16
	FirstClusterLO  uint16
	FileSize        uint32
}

// directorySlotSize is the size of one directory slot in bytes.
const directorySlotSize = 32

const (
	// endOfDirectory in the first byte of a slot marks the end of the listing.
	endOfDirectory = 0x00
	// deletedEntry marks a deleted slot. Deleted slots are decoded like any
	// other entry, special handling of them is out of scope.
	deletedEntry = 0xE5
)
