package eccp

// baseTableWidth is the NAF width of the base-point table cached by every
// ECDSA instance.
const baseTableWidth = 6

// Signature holds an ECDSA signature pair (r, s) as elements of the
// scalar field. The nonce used during signing is retained unexported for
// cross-implementation testing and is never part of the wire contract.
type Signature struct {
	R, S *FieldElement

	k *FieldElement
}

// ECDSA signs and verifies over a curve group. It is constructed from the
// scalar field (the field over the base point's order), the curve, and the
// base point, whose width-6 odd-multiple table is precomputed once and
// reused for every base-point multiplication. Messages, private keys and
// signature halves are elements of the scalar field; the curve keeps its
// own coordinate field.
type ECDSA struct {
	scalar *Field
	curve  *Curve
	base   *Point
	table  []*Point
	rng    RandomSource
}

// NewECDSA creates a signer/verifier for the given domain. The random
// source is used for every nonce and key draw.
func NewECDSA(scalarField *Field, curve *Curve, base *Point, rng RandomSource) (*ECDSA, error) {
	table, err := base.PrecomputeNAFPoints(baseTableWidth)
	if err != nil {
		return nil, err
	}
	return &ECDSA{
		scalar: scalarField,
		curve:  curve,
		base:   base,
		table:  table,
		rng:    rng,
	}, nil
}

// ScalarField returns the field the signature arithmetic runs in.
func (e *ECDSA) ScalarField() *Field {
	return e.scalar
}

// Base returns the base point.
func (e *ECDSA) Base() *Point {
	return e.base
}

// mulBase multiplies the base point through the cached table.
func (e *ECDSA) mulBase(k *FieldElement) (*Point, error) {
	return e.base.MultiplyPrecomputed(k, baseTableWidth, e.table)
}

// GenerateKeyPair draws a private scalar in [1, n) and returns it with the
// matching public point.
func (e *ECDSA) GenerateKeyPair() (*FieldElement, *Point, error) {
	d, err := e.scalar.RandomNonZero(e.rng)
	if err != nil {
		return nil, nil, err
	}
	q, err := e.mulBase(d)
	if err != nil {
		return nil, nil, err
	}
	return d, q, nil
}

// Sign produces a signature over a message already digested into the
// scalar field:
//
//	draw nonce k in [1, n), R = k·P, r = R.x mod n
//	s = k⁻¹ · (message + privateKey·r)
//
// Draws repeat until both r and s are nonzero.
func (e *ECDSA) Sign(message, privateKey *FieldElement) (*Signature, error) {
	for {
		k, err := e.scalar.RandomNonZero(e.rng)
		if err != nil {
			return nil, err
		}
		rp, err := e.mulBase(k)
		if err != nil {
			return nil, err
		}
		if rp.IsInfinity() {
			continue
		}
		x, err := rp.X()
		if err != nil {
			return nil, err
		}
		r := e.scalar.reduceValue(x.mag)
		if r.IsZero() {
			continue
		}
		kInv, err := k.Inverse()
		if err != nil {
			return nil, err
		}
		s := kInv.Mul(message.Add(privateKey.Mul(r)))
		if s.IsZero() {
			continue
		}
		return &Signature{R: r, S: s, k: k}, nil
	}
}

// Verify checks a signature against a public key and message. Any
// arithmetic failure along the way rejects.
//
//	w = s⁻¹, u1 = message·w, u2 = r·w
//	X = u1·P + u2·Q, accept iff X is finite and X.x mod n = r
func (e *ECDSA) Verify(publicKey *Point, message *FieldElement, sig *Signature) bool {
	if publicKey == nil || sig == nil || sig.R == nil || sig.S == nil {
		return false
	}
	if sig.R.IsZero() {
		return false
	}
	w, err := sig.S.Inverse()
	if err != nil {
		return false
	}
	u1 := message.Mul(w)
	u2 := sig.R.Mul(w)
	t1, err := e.mulBase(u1)
	if err != nil {
		return false
	}
	x := t1.Add(publicKey.Multiply(u2))
	if x.IsInfinity() {
		return false
	}
	ax, err := x.X()
	if err != nil {
		return false
	}
	return e.scalar.reduceValue(ax.mag).Equal(sig.R)
}
