package fatnav

import (
	"testing"
)

// The tests run against an in-memory FAT16 image with the following layout:
//
//  reserved sectors  1          sector size       512
//  cluster size      1 sector   FAT size          32 sectors, 2 copies
//  FAT area          0x200      root directory    0x8200, 512 entries
//  data area         0xC200, 16 clusters (2-17)
//
// Root directory: DUMMY (volume label), TEST (directory, cluster 2),
// HELLO.TXT ("hello\n", cluster 7) and WORLD.TXT (516 bytes spanning
// clusters 5 and 6). TEST contains ".", "..", ONE.TXT ("one\n", cluster 3)
// and TWO.TXT ("two\n", cluster 4, read only).
const (
	testSectorSize  = 512
	testFATOffset   = 0x200
	testRootOffset  = 0x8200
	testRootEntries = 512
	testDataOffset  = 0xC200
	testClusters    = 16
)

// Creation stamps used for ONE.TXT: 2024-07-09 12:30:10.
const (
	testCreateDate = uint16(44<<9 | 7<<5 | 9)
	testCreateTime = uint16(12<<11 | 30<<5 | 5)
)

func testWorldContent() []byte {
	content := make([]byte, testSectorSize+4)
	for i := range content {
		content[i] = byte('a' + i%26)
	}
	return content
}

func buildTestImage(t *testing.T) []byte {
	t.Helper()

	img := make([]byte, testDataOffset+testClusters*testSectorSize)

	// Boot sector.
	putU16(img, 11, testSectorSize) // bytes per sector
	img[13] = 1                     // sectors per cluster
	putU16(img, 14, 1)              // reserved sectors
	img[16] = 2                     // FAT copies
	putU16(img, 17, testRootEntries)
	putU16(img, 22, 32) // FAT size in sectors

	// FAT. Cluster 5 continues in cluster 6, all other used clusters are
	// single-cluster chains. The first two entries are reserved.
	putFAT(img, 0, 0xFFF8)
	putFAT(img, 1, 0xFFFF)
	putFAT(img, 2, 0xFFFF) // TEST
	putFAT(img, 3, 0xFFF8) // ONE.TXT, lower bound of the EOF range
	putFAT(img, 4, 0xFFFF) // TWO.TXT
	putFAT(img, 5, 6)      // WORLD.TXT, first half
	putFAT(img, 6, 0xFFFF) // WORLD.TXT, tail
	putFAT(img, 7, 0xFFFF) // HELLO.TXT

	// Root directory.
	world := testWorldContent()
	putEntry(img, rootSlot(0), "DUMMY", "", AttrVolumeID, 0, 0, 0, 0)
	putEntry(img, rootSlot(1), "TEST", "", AttrDirectory, 0, 0, 2, 0)
	putEntry(img, rootSlot(2), "HELLO", "TXT", AttrArchive, 0, 0, 7, 6)
	putEntry(img, rootSlot(3), "WORLD", "TXT", AttrArchive, 0, 0, 5, uint32(len(world)))

	// TEST directory in cluster 2.
	putEntry(img, clusterOffset(2), ".", "", AttrDirectory, 0, 0, 2, 0)
	putEntry(img, clusterOffset(2)+32, "..", "", AttrDirectory, 0, 0, 0, 0)
	putEntry(img, clusterOffset(2)+64, "ONE", "TXT", AttrArchive, testCreateTime, testCreateDate, 3, 4)
	putEntry(img, clusterOffset(2)+96, "TWO", "TXT", AttrReadOnly, 0, 0, 4, 4)

	// File contents.
	copy(img[clusterOffset(3):], "one\n")
	copy(img[clusterOffset(4):], "two\n")
	copy(img[clusterOffset(5):], world[:testSectorSize])
	copy(img[clusterOffset(6):], world[testSectorSize:])
	copy(img[clusterOffset(7):], "hello\n")

	return img
}

func rootSlot(index int64) int64 {
	return testRootOffset + index*directorySlotSize
}

func clusterOffset(cluster int64) int64 {
	return testDataOffset + (cluster-2)*testSectorSize
}

func putU16(img []byte, offset int64, value uint16) {
	img[offset] = byte(value)
	img[offset+1] = byte(value >> 8)
}

func putU32(img []byte, offset int64, value uint32) {
	img[offset] = byte(value)
	img[offset+1] = byte(value >> 8)
	img[offset+2] = byte(value >> 16)
	img[offset+3] = byte(value >> 24)
}

func putFAT(img []byte, cluster int64, value uint16) {
	putU16(img, testFATOffset+cluster*2, value)
}

func putEntry(img []byte, offset int64, name, ext string, attr byte, createTime, createDate uint16, cluster uint16, size uint32) {
	copy(img[offset:offset+11], "           ")
	copy(img[offset:], name)
	copy(img[offset+8:], ext)
	img[offset+11] = attr
	putU16(img, offset+14, createTime)
	putU16(img, offset+16, createDate)
	putU16(img, offset+26, cluster)
	putU32(img, offset+28, size)
}

func testNavigator(t *testing.T) *Navigator {
	t.Helper()

	nav, err := New(buildTestImage(t))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return nav
}
