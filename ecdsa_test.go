package eccp

import (
	"errors"
	"testing"
)

// fixedSource replays a scripted sequence of draws, then fails. Used to
// drive signing with a known nonce.
type fixedSource struct {
	vals []uint32
	pos  int
}

var errSourceDrained = errors.New("fixed source drained")

func (s *fixedSource) Uint32() (uint32, error) {
	if s.pos >= len(s.vals) {
		return 0, errSourceDrained
	}
	v := s.vals[s.pos]
	s.pos++
	return v, nil
}

func eccp79Signer(t *testing.T, rng RandomSource) (*ECDSA, *Domain) {
	t.Helper()
	dom := eccp79Domain(t)
	e, err := NewECDSA(dom.ScalarField, dom.Curve, dom.G, rng)
	if err != nil {
		t.Fatalf("NewECDSA: %v", err)
	}
	return e, dom
}

// TestSignKnownNonce feeds the signer the limbs of a fixed nonce and
// checks the resulting signature halves against independently computed
// values.
func TestSignKnownNonce(t *testing.T) {
	cp := CurveByName("ECCp-79")
	// Nonce k = 1122334455667788990a, low limbs first.
	src := &fixedSource{vals: []uint32{0x7788990A, 0x33445566, 0x00001122}}
	e, dom := eccp79Signer(t, src)

	msg, err := dom.ScalarField.FromHex("0123456789ABCDEF0123")
	if err != nil {
		t.Fatalf("FromHex: %v", err)
	}
	priv, err := dom.ScalarField.FromHex(cp.D)
	if err != nil {
		t.Fatalf("FromHex: %v", err)
	}

	sig, err := e.Sign(msg, priv)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if got := sig.k.Hex(); got != "1122334455667788990a" {
		t.Errorf("nonce = %s, want 1122334455667788990a", got)
	}
	if got := sig.R.Hex(); got != "3fcc609e15e043ddccbe" {
		t.Errorf("r = %s, want 3fcc609e15e043ddccbe", got)
	}
	if got := sig.S.Hex(); got != "1e4ee31dd8c5a4401658" {
		t.Errorf("s = %s, want 1e4ee31dd8c5a4401658", got)
	}

	pub := publicKey(t, dom, cp)
	ve, err := NewECDSA(dom.ScalarField, dom.Curve, dom.G, NewCryptoSource())
	if err != nil {
		t.Fatalf("NewECDSA: %v", err)
	}
	if !ve.Verify(pub, msg, sig) {
		t.Error("known-nonce signature does not verify")
	}
}

func publicKey(t *testing.T, dom *Domain, cp *CurveParams) *Point {
	t.Helper()
	qx, err := dom.Field.FromHex(cp.Qx)
	if err != nil {
		t.Fatalf("FromHex: %v", err)
	}
	qy, err := dom.Field.FromHex(cp.Qy)
	if err != nil {
		t.Fatalf("FromHex: %v", err)
	}
	pub, err := dom.Curve.NewPoint(qx, qy)
	if err != nil {
		t.Fatalf("NewPoint: %v", err)
	}
	return pub
}

// TestSignVerifyRoundTrip signs random messages under fresh key pairs and
// checks verification, message tampering and signature tampering.
func TestSignVerifyRoundTrip(t *testing.T) {
	for _, name := range []string{"ECCp-79", "ECCp-131"} {
		t.Run(name, func(t *testing.T) {
			dom, err := CurveByName(name).Domain()
			if err != nil {
				t.Fatalf("Domain: %v", err)
			}
			e, err := NewECDSA(dom.ScalarField, dom.Curve, dom.G, NewCryptoSource())
			if err != nil {
				t.Fatalf("NewECDSA: %v", err)
			}
			for i := 0; i < 5; i++ {
				priv, pub, err := e.GenerateKeyPair()
				if err != nil {
					t.Fatalf("GenerateKeyPair: %v", err)
				}
				msg, err := dom.ScalarField.Random(NewCryptoSource())
				if err != nil {
					t.Fatalf("Random: %v", err)
				}
				sig, err := e.Sign(msg, priv)
				if err != nil {
					t.Fatalf("Sign: %v", err)
				}
				if !e.Verify(pub, msg, sig) {
					t.Fatal("valid signature rejected")
				}

				// A flipped message bit must reject.
				flipped := flipLowBit(msg, dom.ScalarField.One())
				if e.Verify(pub, flipped, sig) {
					t.Fatal("tampered message accepted")
				}

				// Flipping the low bit of r or s must reject.
				one := dom.ScalarField.One()
				badR := &Signature{R: flipLowBit(sig.R, one), S: sig.S}
				if e.Verify(pub, msg, badR) {
					t.Fatal("tampered r accepted")
				}
				badS := &Signature{R: sig.R, S: flipLowBit(sig.S, one)}
				if e.Verify(pub, msg, badS) {
					t.Fatal("tampered s accepted")
				}
			}
		})
	}
}

// flipLowBit toggles bit zero of an element.
func flipLowBit(a, one *FieldElement) *FieldElement {
	if a.mag[0]&1 == 1 {
		return a.Sub(one)
	}
	return a.Add(one)
}

// TestSignWithHashedMessage runs the byte-level flow: digest a message
// into the scalar field, sign, verify, and reject a different message.
func TestSignWithHashedMessage(t *testing.T) {
	e, dom := eccp79Signer(t, NewCryptoSource())
	priv, pub, err := e.GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	msg := HashToElement(dom.ScalarField, []byte("attack at dawn"))
	sig, err := e.Sign(msg, priv)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if !e.Verify(pub, msg, sig) {
		t.Fatal("hashed-message signature rejected")
	}
	other := HashToElement(dom.ScalarField, []byte("attack at dusk"))
	if e.Verify(pub, other, sig) {
		t.Fatal("signature accepted for a different message")
	}
}

func TestVerifyRejectsZeroHalves(t *testing.T) {
	cp := CurveByName("ECCp-79")
	e, dom := eccp79Signer(t, NewCryptoSource())
	pub := publicKey(t, dom, cp)
	msg, _ := dom.ScalarField.FromInt(42)
	r, _ := dom.ScalarField.FromInt(7)

	if e.Verify(pub, msg, &Signature{R: dom.ScalarField.Zero(), S: r}) {
		t.Error("signature with r = 0 accepted")
	}
	if e.Verify(pub, msg, &Signature{R: r, S: dom.ScalarField.Zero()}) {
		t.Error("signature with s = 0 accepted")
	}
	if e.Verify(pub, msg, nil) {
		t.Error("nil signature accepted")
	}
}

// TestSignDrainedSource propagates the source failure out of Sign.
func TestSignDrainedSource(t *testing.T) {
	e, dom := eccp79Signer(t, &fixedSource{})
	msg, _ := dom.ScalarField.FromInt(1)
	priv, _ := dom.ScalarField.FromInt(2)
	if _, err := e.Sign(msg, priv); err != errSourceDrained {
		t.Errorf("Sign error = %v, want errSourceDrained", err)
	}
}
