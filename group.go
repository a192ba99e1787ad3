package eccp

// Curve represents a short-Weierstrass curve y^2 = x^3 + ax + b over a
// prime field. Construction verifies the discriminant and caches the
// inverse of two, which every point addition needs for its final halving;
// the cache turns a per-addition inversion into a multiply.
type Curve struct {
	field        *Field
	a, b         *FieldElement
	inverseOfTwo *FieldElement
}

// NewCurve creates a curve from coefficients a and b, failing when
// 4a^3 + 27b^2 = 0 (mod p).
func NewCurve(f *Field, a, b *FieldElement) (*Curve, error) {
	a3 := a.Mul(a).Mul(a)
	disc := a3.MulInt(4).Add(b.Mul(b).MulInt(27))
	if disc.IsZero() {
		return nil, ErrInvalidCurve
	}
	two, err := f.FromInt(2)
	if err != nil {
		return nil, err
	}
	invTwo, err := two.Inverse()
	if err != nil {
		return nil, err
	}
	return &Curve{field: f, a: a, b: b, inverseOfTwo: invTwo}, nil
}

// Field returns the underlying prime field.
func (c *Curve) Field() *Field {
	return c.field
}

// A returns the curve coefficient a.
func (c *Curve) A() *FieldElement {
	return c.a
}

// B returns the curve coefficient b.
func (c *Curve) B() *FieldElement {
	return c.b
}

// Point represents a curve point in Jacobian-projective coordinates
// (X, Y, Z) with affine image (X/Z^2, Y/Z^3), or the point at infinity.
// Points are immutable; operations return new points.
type Point struct {
	curve    *Curve
	x, y, z  *FieldElement
	infinity bool
}

// NewPoint creates a point from affine coordinates, verifying the curve
// equation y^2 = x^3 + ax + b.
func (c *Curve) NewPoint(x, y *FieldElement) (*Point, error) {
	lhs := y.Mul(y)
	rhs := x.Mul(x).Mul(x).Add(c.a.Mul(x)).Add(c.b)
	if !lhs.Equal(rhs) {
		return nil, ErrPointNotOnCurve
	}
	return &Point{curve: c, x: x, y: y, z: c.field.One()}, nil
}

// Infinity returns the identity element of the curve group.
func (c *Curve) Infinity() *Point {
	return &Point{curve: c, infinity: true}
}

// IsInfinity reports whether the point is the identity.
func (p *Point) IsInfinity() bool {
	return p.infinity
}

// Curve returns the curve this point lies on.
func (p *Point) Curve() *Curve {
	return p.curve
}

// X returns the affine x-coordinate X / Z^2.
func (p *Point) X() (*FieldElement, error) {
	if p.infinity {
		return nil, ErrPointAtInfinity
	}
	zz, err := p.z.Mul(p.z).Inverse()
	if err != nil {
		return nil, err
	}
	return p.x.Mul(zz), nil
}

// Y returns the affine y-coordinate Y / Z^3.
func (p *Point) Y() (*FieldElement, error) {
	if p.infinity {
		return nil, ErrPointAtInfinity
	}
	zzz, err := p.z.Mul(p.z).Mul(p.z).Inverse()
	if err != nil {
		return nil, err
	}
	return p.y.Mul(zzz), nil
}

// Equal compares points in projective form. Two equal affine points in
// different Jacobian representations can compare unequal; callers that
// need affine equality must normalize through X and Y first.
func (p *Point) Equal(q *Point) bool {
	if p.infinity && q.infinity {
		return true
	}
	if p.infinity || q.infinity {
		return false
	}
	return p.x.Equal(q.x) && p.y.Equal(q.y) && p.z.Equal(q.z)
}

// Neg returns the inverse point (X, p-Y, Z).
func (p *Point) Neg() *Point {
	if p.infinity {
		return p.curve.Infinity()
	}
	return &Point{curve: p.curve, x: p.x, y: p.y.Neg(), z: p.z}
}

// clone returns a copy of the point.
func (p *Point) clone() *Point {
	if p.infinity {
		return p.curve.Infinity()
	}
	return &Point{curve: p.curve, x: p.x, y: p.y, z: p.z}
}

// Add returns p + q in Jacobian coordinates:
//
//	λ1 = X1·Z2², λ2 = X2·Z1², λ3 = λ1 − λ2, λ7 = λ1 + λ2
//	λ4 = Y1·Z2³, λ5 = Y2·Z1³, λ6 = λ4 − λ5, λ8 = λ4 + λ5
//	Z3 = Z1·Z2·λ3
//	X3 = λ6² − λ7·λ3²
//	λ9 = λ7·λ3² − 2·X3
//	Y3 = (λ9·λ6 − λ8·λ3³) · 2⁻¹
//
// λ3 = 0 means the operands share an x-coordinate: same point when λ6 = 0
// too (delegate to doubling, which also catches equal affine points in
// different Jacobian form), inverses otherwise (infinity).
func (p *Point) Add(q *Point) *Point {
	if p.infinity {
		return q.clone()
	}
	if q.infinity {
		return p.clone()
	}
	if p.Equal(q) {
		return p.Double()
	}

	z1z1 := p.z.Mul(p.z)
	z2z2 := q.z.Mul(q.z)
	l1 := p.x.Mul(z2z2)
	l2 := q.x.Mul(z1z1)
	l3 := l1.Sub(l2)
	l4 := p.y.Mul(z2z2.Mul(q.z))
	l5 := q.y.Mul(z1z1.Mul(p.z))
	l6 := l4.Sub(l5)
	if l3.IsZero() {
		if l6.IsZero() {
			return p.Double()
		}
		return p.curve.Infinity()
	}
	l7 := l1.Add(l2)
	l8 := l4.Add(l5)
	l3l3 := l3.Mul(l3)
	t := l7.Mul(l3l3)
	z3 := p.z.Mul(q.z).Mul(l3)
	x3 := l6.Mul(l6).Sub(t)
	l9 := t.Sub(x3.MulInt(2))
	y3 := l9.Mul(l6).Sub(l8.Mul(l3l3.Mul(l3))).Mul(p.curve.inverseOfTwo)
	return &Point{curve: p.curve, x: x3, y: y3, z: z3}
}

// Double returns 2p:
//
//	λ1 = 3·X² + a·Z⁴
//	λ2 = 4·X·Y²
//	λ3 = 8·Y⁴
//	Z3 = 2·Y·Z
//	X3 = λ1² − 2·λ2
//	Y3 = λ1·(λ2 − X3) − λ3
//
// The identity and points with Y = 0 double to infinity.
func (p *Point) Double() *Point {
	if p.infinity || p.y.IsZero() {
		return p.curve.Infinity()
	}
	zz := p.z.Mul(p.z)
	l1 := p.x.Mul(p.x).MulInt(3).Add(p.curve.a.Mul(zz.Mul(zz)))
	yy := p.y.Mul(p.y)
	l2 := p.x.Mul(yy).MulInt(4)
	l3 := yy.Mul(yy).MulInt(8)
	z3 := p.y.Mul(p.z).MulInt(2)
	x3 := l1.Mul(l1).Sub(l2.MulInt(2))
	y3 := l1.Mul(l2.Sub(x3)).Sub(l3)
	return &Point{curve: p.curve, x: x3, y: y3, z: z3}
}

// Sub returns p - q.
func (p *Point) Sub(q *Point) *Point {
	return p.Add(q.Neg())
}
