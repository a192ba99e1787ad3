package eccp

import (
	"crypto/rand"
	"encoding/binary"
	"math/bits"
)

// RandomSource supplies uniform 32-bit draws. Successive draws must be
// independent; signing security depends on it. A long-lived source is
// injected once at construction and reused for every draw.
type RandomSource interface {
	Uint32() (uint32, error)
}

// cryptoSource reads from crypto/rand.
type cryptoSource struct{}

// NewCryptoSource returns a RandomSource backed by the operating system
// CSPRNG.
func NewCryptoSource() RandomSource {
	return cryptoSource{}
}

func (cryptoSource) Uint32() (uint32, error) {
	var b [4]byte
	if _, err := rand.Read(b[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b[:]), nil
}

// Random draws a uniform element of [0, p). Limbs are filled from the
// source with the top limb masked to the modulus width, then the draw is
// rejected and retried until it lands below p; the mask keeps the
// expected number of retries below two.
func (f *Field) Random(src RandomSource) (*FieldElement, error) {
	k := len(f.p.mag)
	mask := uint32(1)<<uint(bits.Len32(f.p.mag[k-1])) - 1
	for {
		mag := make([]uint32, k)
		for i := range mag {
			v, err := src.Uint32()
			if err != nil {
				return nil, err
			}
			mag[i] = v
		}
		mag[k-1] &= mask
		mag = magStrip(mag)
		if magCmp(mag, f.p.mag) < 0 {
			return f.newElement(mag), nil
		}
	}
}

// RandomNonZero draws a uniform element of [1, p).
func (f *Field) RandomNonZero(src RandomSource) (*FieldElement, error) {
	for {
		e, err := f.Random(src)
		if err != nil {
			return nil, err
		}
		if !e.IsZero() {
			return e, nil
		}
	}
}
