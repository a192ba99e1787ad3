package eccp

import "math/bits"

// FieldElement represents an unsigned integer in [0, p) for the field it
// belongs to. The magnitude is a little-endian sequence of 32-bit limbs
// with no trailing zero limbs; the canonical zero is a single zero limb
// with signum 0. Elements are immutable: every operation allocates its
// result, so a FieldElement may be shared across goroutines without
// synchronization.
type FieldElement struct {
	field  *Field
	signum int
	mag    []uint32
}

// Field returns the field this element belongs to.
func (a *FieldElement) Field() *Field {
	return a.field
}

// Signum returns 0 for the zero element and 1 otherwise.
func (a *FieldElement) Signum() int {
	return a.signum
}

// IsZero reports whether the element is zero.
func (a *FieldElement) IsZero() bool {
	return a.signum == 0
}

// Cmp compares two elements, returning -1, 0 or 1.
func (a *FieldElement) Cmp(b *FieldElement) int {
	return magCmp(a.mag, b.mag)
}

// Equal reports whether two elements hold the same value.
func (a *FieldElement) Equal(b *FieldElement) bool {
	return magCmp(a.mag, b.mag) == 0
}

// NumBits returns the number of significant bits, 0 for the zero element.
func (a *FieldElement) NumBits() int {
	if a.signum == 0 {
		return 0
	}
	return magBitLen(a.mag)
}

// Add returns a + b (mod p).
func (a *FieldElement) Add(b *FieldElement) *FieldElement {
	if a.signum == 0 {
		return b.clone()
	}
	if b.signum == 0 {
		return a.clone()
	}
	sum := magAdd(a.mag, b.mag)
	if magCmp(sum, a.field.p.mag) >= 0 {
		sum = magSub(sum, a.field.p.mag)
	}
	return a.field.newElement(sum)
}

// Sub returns a - b (mod p).
func (a *FieldElement) Sub(b *FieldElement) *FieldElement {
	switch magCmp(a.mag, b.mag) {
	case 0:
		return a.field.Zero()
	case 1:
		return a.field.newElement(magSub(a.mag, b.mag))
	}
	// a < b: wrap around as p - (b - a).
	return a.field.newElement(magSub(a.field.p.mag, magSub(b.mag, a.mag)))
}

// Neg returns p - a, or zero when a is zero.
func (a *FieldElement) Neg() *FieldElement {
	if a.signum == 0 {
		return a.field.Zero()
	}
	return a.field.newElement(magSub(a.field.p.mag, a.mag))
}

// clone returns a fresh element with the same value.
func (a *FieldElement) clone() *FieldElement {
	mag := make([]uint32, len(a.mag))
	copy(mag, a.mag)
	return &FieldElement{field: a.field, signum: a.signum, mag: mag}
}

// Magnitude helpers. All assume stripped inputs (no trailing zero limbs,
// canonical zero = [0]) unless noted, and never alias their result with an
// argument.

// magStrip trims high zero limbs, keeping at least one limb.
func magStrip(m []uint32) []uint32 {
	n := len(m)
	for n > 1 && m[n-1] == 0 {
		n--
	}
	return m[:n]
}

func magIsZero(m []uint32) bool {
	return len(m) == 1 && m[0] == 0
}

func magIsOne(m []uint32) bool {
	return len(m) == 1 && m[0] == 1
}

func magIsOdd(m []uint32) bool {
	return m[0]&1 == 1
}

// magCmp compares magnitudes by length, then limbs high to low.
func magCmp(a, b []uint32) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// magBitLen returns the bit length of a stripped magnitude.
func magBitLen(m []uint32) int {
	return (len(m)-1)*32 + bits.Len32(m[len(m)-1])
}

// magAdd returns a + b with 64-bit carry propagation.
func magAdd(a, b []uint32) []uint32 {
	if len(a) < len(b) {
		a, b = b, a
	}
	out := make([]uint32, len(a)+1)
	var carry uint64
	for i := 0; i < len(a); i++ {
		sum := uint64(a[i]) + carry
		if i < len(b) {
			sum += uint64(b[i])
		}
		out[i] = uint32(sum)
		carry = sum >> 32
	}
	out[len(a)] = uint32(carry)
	return magStrip(out)
}

// magSub returns a - b; the caller guarantees a >= b. Borrow is detected
// by the sign of the 64-bit accumulator.
func magSub(a, b []uint32) []uint32 {
	out := make([]uint32, len(a))
	var borrow int64
	for i := 0; i < len(a); i++ {
		d := int64(a[i]) - borrow
		if i < len(b) {
			d -= int64(b[i])
		}
		if d < 0 {
			d += 1 << 32
			borrow = 1
		} else {
			borrow = 0
		}
		out[i] = uint32(d)
	}
	return magStrip(out)
}

// magShr1 returns the magnitude shifted right by one bit.
func magShr1(m []uint32) []uint32 {
	out := make([]uint32, len(m))
	var carry uint32
	for i := len(m) - 1; i >= 0; i-- {
		out[i] = m[i]>>1 | carry<<31
		carry = m[i] & 1
	}
	return magStrip(out)
}

// magShl1 returns the magnitude shifted left by one bit.
func magShl1(m []uint32) []uint32 {
	out := make([]uint32, len(m)+1)
	var carry uint32
	for i := 0; i < len(m); i++ {
		out[i] = m[i]<<1 | carry
		carry = m[i] >> 31
	}
	out[len(m)] = carry
	return magStrip(out)
}

// magDivMod divides num by den with a binary shift-and-subtract loop,
// returning quotient and remainder. It is only used in setup paths (the
// Barrett constant) and for reducing oversized inputs; per-operation
// reductions go through the Barrett constant instead.
func magDivMod(num, den []uint32) (quo, rem []uint32) {
	num = magStrip(num)
	if magCmp(num, den) < 0 {
		out := make([]uint32, len(num))
		copy(out, num)
		return []uint32{0}, out
	}
	quo = make([]uint32, len(num))
	rem = []uint32{0}
	for i := magBitLen(num) - 1; i >= 0; i-- {
		rem = magShl1(rem)
		rem[0] |= num[i/32] >> (uint(i) % 32) & 1
		if magCmp(rem, den) >= 0 {
			rem = magSub(rem, den)
			quo[i/32] |= 1 << (uint(i) % 32)
		}
	}
	return magStrip(quo), rem
}
