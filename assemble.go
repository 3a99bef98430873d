package fatnav

import (
	"errors"
	"fmt"

	"github.com/aligator/fatnav/checkpoint"
)

// These errors may occur while assembling file content.
var (
	ErrTruncatedFile = errors.New("cluster chain is too short for the declared file size")
)

// FileContent is the fully assembled content of one regular file.
type FileContent struct {
	Name      string
	Extension string
	Size      uint32
	Bytes     []byte
}

// DisplayName returns the usual "NAME.EXT" rendering of the 8.3 name.
func (f FileContent) DisplayName() string {
	if f.Extension == "" {
		return f.Name
	}
	return f.Name + "." + f.Extension
}

// assembleFile concatenates the payload of every cluster of the chain in
// chain order, truncating the final cluster to the remaining byte count.
// The result is exactly size bytes long.
//
// A chain too short to cover the declared size is a data-integrity fault
// and fails with ErrTruncatedFile instead of silently returning a prefix.
func assembleFile(img Image, geo Geometry, chain []uint16, size uint32) ([]byte, error) {
	content := make([]byte, 0, size)
	remaining := int64(size)
	clusterSize := geo.ClusterSize()

	for _, cluster := range chain {
		if remaining == 0 {
			break
		}

		take := clusterSize
		if remaining < take {
			take = remaining
		}

		payload, err := img.Slice(geo.ClusterOffset(cluster), take)
		if err != nil {
			return nil, checkpoint.From(err)
		}

		content = append(content, payload...)
		remaining -= take
	}

	if remaining > 0 {
		return nil, checkpoint.Wrap(
			fmt.Errorf("declared size %d, missing %d bytes", size, remaining),
			ErrTruncatedFile,
		)
	}

	return content, nil
}
