package fatnav

import (
	"errors"
	"fmt"

	"github.com/aligator/fatnav/checkpoint"
)

// These errors may occur while reading raw bytes from the image.
var (
	ErrOutOfBounds = errors.New("read beyond the end of the image")
)

// Image is a whole FAT16 volume held in memory.
// It is never mutated after loading, so it may be shared between several
// Navigator instances.
type Image []byte

// U8 returns the byte at the given offset.
func (img Image) U8(offset int64) (uint8, error) {
	if err := img.check(offset, 1); err != nil {
		return 0, err
	}
	return img[offset], nil
}

// U16 returns the little endian 16 bit value at the given offset.
func (img Image) U16(offset int64) (uint16, error) {
	if err := img.check(offset, 2); err != nil {
		return 0, err
	}
	return uint16(img[offset]) | uint16(img[offset+1])<<8, nil
}

// U32 returns the little endian 32 bit value at the given offset.
func (img Image) U32(offset int64) (uint32, error) {
	if err := img.check(offset, 4); err != nil {
		return 0, err
	}
	return uint32(img[offset]) |
		uint32(img[offset+1])<<8 |
		uint32(img[offset+2])<<16 |
		uint32(img[offset+3])<<24, nil
}

// Slice returns the raw bytes [offset, offset+length).
// The returned slice aliases the image and must not be modified.
func (img Image) Slice(offset, length int64) ([]byte, error) {
	if err := img.check(offset, length); err != nil {
		return nil, err
	}
	return img[offset : offset+length], nil
}

func (img Image) check(offset, length int64) error {
	if offset < 0 || length < 0 || offset+length > int64(len(img)) {
		return checkpoint.Wrap(
			fmt.Errorf("offset %d, length %d, image size %d", offset, length, len(img)),
			ErrOutOfBounds,
		)
	}
	return nil
}
