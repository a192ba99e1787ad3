package eccp

// Div returns a / b (mod p) with a binary extended Euclidean loop that
// inverts and multiplies in one pass. Variable-time by design.
//
// State: u = b, v = p, x1 = a, x2 = 0, maintaining the invariants
// u*a ≡ x1*b and v*a ≡ x2*b (mod p). Trailing zero bits are stripped from
// u and v, halving x1/x2 with a lazy add-p when they are odd; then the
// larger of u, v absorbs the smaller. When u reaches 1, x1 is the
// quotient; when v reaches 1, x2 is.
func (a *FieldElement) Div(b *FieldElement) (*FieldElement, error) {
	if b.signum == 0 {
		return nil, ErrDivisionByZero
	}
	if a.signum == 0 {
		return a.field.Zero(), nil
	}
	p := a.field.p.mag
	u := append([]uint32(nil), b.mag...)
	v := append([]uint32(nil), p...)
	x1 := append([]uint32(nil), a.mag...)
	x2 := []uint32{0}

	for !magIsOne(u) && !magIsOne(v) {
		for !magIsOdd(u) {
			u = magShr1(u)
			if magIsOdd(x1) {
				x1 = magAdd(x1, p)
			}
			x1 = magShr1(x1)
		}
		for !magIsOdd(v) {
			v = magShr1(v)
			if magIsOdd(x2) {
				x2 = magAdd(x2, p)
			}
			x2 = magShr1(x2)
		}
		if magCmp(u, v) >= 0 {
			u = magSub(u, v)
			x1 = magModSub(x1, x2, p)
		} else {
			v = magSub(v, u)
			x2 = magModSub(x2, x1, p)
		}
	}
	if magIsOne(u) {
		return a.field.newElement(x1), nil
	}
	return a.field.newElement(x2), nil
}

// Inverse returns 1 / a (mod p).
func (a *FieldElement) Inverse() (*FieldElement, error) {
	return a.field.One().Div(a)
}

// magModSub returns x - y mod p for magnitudes already below p.
func magModSub(x, y, p []uint32) []uint32 {
	if magCmp(x, y) >= 0 {
		return magSub(x, y)
	}
	return magSub(p, magSub(y, x))
}
