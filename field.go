package eccp

import (
	"errors"
	"fmt"
	"strings"
)

// Field represents a prime field GF(p). It holds the prime modulus and the
// Barrett reduction constant mu = floor(b^2k / p), where b = 2^32 and k is
// the limb length of p. A Field is immutable after construction and may be
// shared freely; every FieldElement it produces keeps a non-owning
// reference back to it.
type Field struct {
	p  *FieldElement
	mu []uint32
}

// NewField creates a field from the hex encoding of an odd prime modulus.
// Primality is not checked; the divider assumes gcd(x, p) = 1 for every
// nonzero x, which only an actual prime guarantees.
func NewField(primeHex string) (*Field, error) {
	mag, err := parseHexMag(primeHex)
	if err != nil {
		return nil, err
	}
	mag = magStrip(mag)
	if magIsZero(mag) {
		return nil, errors.New("field modulus must not be zero")
	}
	f := &Field{}
	f.p = &FieldElement{field: f, signum: 1, mag: mag}
	f.mu = computeMu(mag)
	return f, nil
}

// computeMu computes the Barrett constant floor(b^2k / p) with a binary
// shift-and-subtract division. Runs once per field.
func computeMu(p []uint32) []uint32 {
	k := len(p)
	num := make([]uint32, 2*k+1)
	num[2*k] = 1
	q, _ := magDivMod(num, p)
	return q
}

// P returns the prime modulus as an element-shaped value. Note that the
// modulus itself is not a member of the field.
func (f *Field) P() *FieldElement {
	return f.p
}

// BitSize returns the number of significant bits of the modulus.
func (f *Field) BitSize() int {
	return magBitLen(f.p.mag)
}

// Zero returns the zero element.
func (f *Field) Zero() *FieldElement {
	return f.newElement([]uint32{0})
}

// One returns the multiplicative identity.
func (f *Field) One() *FieldElement {
	return f.newElement([]uint32{1})
}

// FromHex parses a hex string into a field element. The value must be
// below the modulus. Uppercase digits and leading zeros are accepted;
// empty input is rejected.
func (f *Field) FromHex(s string) (*FieldElement, error) {
	mag, err := parseHexMag(s)
	if err != nil {
		return nil, err
	}
	mag = magStrip(mag)
	if magCmp(mag, f.p.mag) >= 0 {
		return nil, ErrValueOutOfField
	}
	return f.newElement(mag), nil
}

// FromInt builds a field element from a small machine integer, reducing
// modulo p. Negative values are rejected.
func (f *Field) FromInt(v int) (*FieldElement, error) {
	if v < 0 {
		return nil, ErrNegativeSmallInt
	}
	u := uint64(v)
	return f.reduceValue([]uint32{uint32(u), uint32(u >> 32)}), nil
}

// FromBytes interprets big-endian bytes as an unsigned integer and reduces
// it modulo p.
func (f *Field) FromBytes(b []byte) *FieldElement {
	if len(b) == 0 {
		return f.Zero()
	}
	mag := make([]uint32, (len(b)+3)/4)
	for i := 0; i < len(b); i++ {
		mag[i/4] |= uint32(b[len(b)-1-i]) << (8 * uint(i%4))
	}
	return f.reduceValue(mag)
}

// newElement wraps a magnitude already known to be below p.
func (f *Field) newElement(mag []uint32) *FieldElement {
	mag = magStrip(mag)
	e := &FieldElement{field: f, mag: mag}
	if !magIsZero(mag) {
		e.signum = 1
	}
	return e
}

// reduceValue brings an arbitrary-length magnitude into [0, p). Used for
// byte and integer inputs whose size is not bounded by 2k limbs; products
// of reduced elements go through the Barrett path instead.
func (f *Field) reduceValue(mag []uint32) *FieldElement {
	mag = magStrip(mag)
	if magCmp(mag, f.p.mag) >= 0 {
		_, mag = magDivMod(mag, f.p.mag)
	}
	return f.newElement(mag)
}

// parseHexMag decodes hex digits into a little-endian limb magnitude.
// Digits are consumed in groups of up to seven so each group fits in 28
// bits and the multiply-accumulate step cannot overflow.
func parseHexMag(s string) ([]uint32, error) {
	if len(s) == 0 {
		return nil, ErrInvalidHex
	}
	i := 0
	for i < len(s) && s[i] == '0' {
		i++
	}
	mag := []uint32{0}
	var group uint32
	glen := 0
	for ; i < len(s); i++ {
		d, ok := hexDigit(s[i])
		if !ok {
			return nil, ErrInvalidHex
		}
		group = group<<4 | uint32(d)
		glen++
		if glen == 7 {
			mag = magAdd(magMulWord(mag, 1<<28), []uint32{group})
			group, glen = 0, 0
		}
	}
	if glen > 0 {
		mag = magAdd(magMulWord(mag, uint32(1)<<uint(4*glen)), []uint32{group})
	}
	return mag, nil
}

func hexDigit(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// Hex renders the element as lowercase hex with no leading zeros. Zero
// renders as "0".
func (a *FieldElement) Hex() string {
	if a.signum == 0 {
		return "0"
	}
	var sb strings.Builder
	for i := len(a.mag) - 1; i >= 0; i-- {
		if i == len(a.mag)-1 {
			fmt.Fprintf(&sb, "%x", a.mag[i])
		} else {
			fmt.Fprintf(&sb, "%08x", a.mag[i])
		}
	}
	return sb.String()
}

// Bytes returns the element as big-endian bytes, zero-padded to the byte
// length of the field modulus.
func (a *FieldElement) Bytes() []byte {
	out := make([]byte, (a.field.BitSize()+7)/8)
	for i, limb := range a.mag {
		for j := 0; j < 4; j++ {
			pos := len(out) - 1 - (i*4 + j)
			if pos < 0 {
				break
			}
			out[pos] = byte(limb >> (8 * uint(j)))
		}
	}
	return out
}
