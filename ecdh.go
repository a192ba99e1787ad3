package eccp

import (
	sha256 "github.com/minio/sha256-simd"
)

// SharedSecret computes a Diffie-Hellman shared secret: the x-coordinate
// of privateKey·publicKey, hashed with SHA-256 into a fixed 32-byte key.
// Both parties arrive at the same point, so the derived secrets agree.
func SharedSecret(privateKey *FieldElement, publicKey *Point) ([]byte, error) {
	if publicKey.IsInfinity() {
		return nil, ErrPointAtInfinity
	}
	shared := publicKey.Multiply(privateKey)
	if shared.IsInfinity() {
		return nil, ErrPointAtInfinity
	}
	x, err := shared.X()
	if err != nil {
		return nil, err
	}
	digest := sha256.Sum256(x.Bytes())
	return digest[:], nil
}
