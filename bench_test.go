package eccp

import "testing"

type benchState struct {
	dom  *Domain
	ec   *ECDSA
	priv *FieldElement
	pub  *Point
	msg  *FieldElement
	sig  *Signature
	a, b *FieldElement
}

func newBenchState(b *testing.B, name string) *benchState {
	b.Helper()
	dom, err := CurveByName(name).Domain()
	if err != nil {
		b.Fatal(err)
	}
	ec, err := NewECDSA(dom.ScalarField, dom.Curve, dom.G, NewCryptoSource())
	if err != nil {
		b.Fatal(err)
	}
	priv, pub, err := ec.GenerateKeyPair()
	if err != nil {
		b.Fatal(err)
	}
	msg := HashToElement(dom.ScalarField, []byte("benchmark message"))
	sig, err := ec.Sign(msg, priv)
	if err != nil {
		b.Fatal(err)
	}
	src := NewCryptoSource()
	x, _ := dom.Field.RandomNonZero(src)
	y, _ := dom.Field.RandomNonZero(src)
	return &benchState{dom: dom, ec: ec, priv: priv, pub: pub, msg: msg, sig: sig, a: x, b: y}
}

func BenchmarkFieldMul(b *testing.B) {
	s := newBenchState(b, "ECCp-131")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.a.Mul(s.b)
	}
}

func BenchmarkFieldDiv(b *testing.B) {
	s := newBenchState(b, "ECCp-131")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.a.Div(s.b); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkScalarMult(b *testing.B) {
	s := newBenchState(b, "ECCp-131")
	k, _ := s.dom.ScalarField.RandomNonZero(NewCryptoSource())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.dom.G.Multiply(k)
	}
}

func BenchmarkSign(b *testing.B) {
	s := newBenchState(b, "ECCp-131")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.ec.Sign(s.msg, s.priv); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkVerify(b *testing.B) {
	s := newBenchState(b, "ECCp-131")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !s.ec.Verify(s.pub, s.msg, s.sig) {
			b.Fatal("signature rejected")
		}
	}
}
