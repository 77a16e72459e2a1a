package feedhash

import (
	"encoding/hex"

	sha256 "github.com/minio/sha256-simd"
)

// Sum digests a raw feed payload so consumers can tell whether the feed
// changed between two resolutions.
func Sum(data []byte) string {
	digest := sha256.Sum256(data)
	return hex.EncodeToString(digest[:])
}
