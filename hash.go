package eccp

import (
	sha256 "github.com/minio/sha256-simd"
)

// HashToElement digests a message into a field element: the SHA-256
// digest is read as a big-endian integer and reduced modulo the field
// prime. This is the bridge between byte-level messages and the
// field-element interface the signer consumes.
func HashToElement(f *Field, message []byte) *FieldElement {
	digest := sha256.Sum256(message)
	return f.FromBytes(digest[:])
}
