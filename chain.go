package fatnav

import (
	"errors"
	"fmt"

	"github.com/aligator/fatnav/checkpoint"
)

// These errors may occur while walking a cluster chain.
// The three *InChain errors are diagnostics: the chain walked up to the
// offending FAT value is still returned alongside them.
var (
	ErrChainTooLong           = errors.New("cluster chain is longer than the FAT, table is corrupt or cyclic")
	ErrFreeClusterInChain     = errors.New("free cluster inside of a cluster chain")
	ErrReservedClusterInChain = errors.New("reserved FAT value inside of a cluster chain")
	ErrBadSectorInChain       = errors.New("bad sector marker inside of a cluster chain")
)

// fatEntry is one 16 bit value of the file allocation table. It either
// points to the next cluster of a chain or is one of the sentinel values.
type fatEntry uint16

// IsFree reports the free cluster sentinel 0x0000.
func (e fatEntry) IsFree() bool { return e == 0x0000 }

// IsReserved reports the reserved value 0x0001 which is never a valid
// cluster number.
func (e fatEntry) IsReserved() bool { return e == 0x0001 }

// IsBad reports the bad sector marker 0xFFF7.
func (e fatEntry) IsBad() bool { return e == 0xFFF7 }

// IsEOF reports the end-of-chain markers 0xFFF8 - 0xFFFF.
func (e fatEntry) IsEOF() bool { return e >= 0xFFF8 }

// IsNextCluster reports whether the entry points to another cluster.
func (e fatEntry) IsNextCluster() bool {
	return !e.IsFree() && !e.IsReserved() && !e.IsBad() && !e.IsEOF()
}

// resolveChain walks the FAT starting at the given cluster and returns the
// ordered cluster numbers of the chain, terminator excluded.
//
// A start cluster of 0 denotes "no chain": directory entries use it to point
// at the fixed root directory area, which is not cluster-linked. The result
// is then an empty chain.
//
// A free, reserved or bad sector value inside of the chain ends the walk and
// is reported as the matching diagnostic error together with the clusters
// walked so far. The walk is bounded by the FAT entry count and fails with
// ErrChainTooLong on corrupt or cyclic tables.
func resolveChain(img Image, geo Geometry, start uint16) ([]uint16, error) {
	if start == 0 {
		return nil, nil
	}

	chain := []uint16{start}
	current := start
	for {
		value, err := img.U16(geo.FATOffset + int64(current)*2)
		if err != nil {
			return nil, checkpoint.From(err)
		}

		entry := fatEntry(value)
		switch {
		case entry.IsEOF():
			return chain, nil
		case entry.IsFree():
			return chain, checkpoint.Wrap(chainError(current, value), ErrFreeClusterInChain)
		case entry.IsReserved():
			return chain, checkpoint.Wrap(chainError(current, value), ErrReservedClusterInChain)
		case entry.IsBad():
			return chain, checkpoint.Wrap(chainError(current, value), ErrBadSectorInChain)
		}

		if len(chain) >= geo.maxChainLength() {
			return nil, checkpoint.Wrap(chainError(current, value), ErrChainTooLong)
		}

		current = uint16(entry)
		chain = append(chain, current)
	}
}

func chainError(cluster uint16, value uint16) error {
	return fmt.Errorf("cluster %d, FAT value %#04x", cluster, value)
}
