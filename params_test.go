package eccp

import (
	"bytes"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
)

// TestParameterSets sweeps every shipped set: the curve must build, the
// base point must lie on it, and the published test key pair must satisfy
// Q = d·G.
func TestParameterSets(t *testing.T) {
	for _, cp := range Curves {
		t.Run(cp.Name, func(t *testing.T) {
			dom, err := cp.Domain()
			if err != nil {
				t.Fatalf("Domain: %v", err)
			}
			if got := dom.Field.BitSize(); got != cp.BitSize {
				t.Errorf("modulus bit size = %d, want %d", got, cp.BitSize)
			}
			d, err := dom.ScalarField.FromHex(cp.D)
			if err != nil {
				t.Fatalf("private key out of scalar field: %v", err)
			}
			pub := publicKey(t, dom, cp)
			if !affineEqual(t, dom.G.Multiply(d), pub) {
				t.Error("d*G does not match the published public key")
			}
		})
	}
}

func TestCurveByName(t *testing.T) {
	if CurveByName("ECCp-79") == nil {
		t.Error("ECCp-79 missing")
	}
	if CurveByName("no-such-curve") != nil {
		t.Error("unknown name did not return nil")
	}
}

// TestSecp256k1AgainstBtcec multiplies the secp256k1 base point by the
// test key with this library and checks the resulting public point
// against btcec's independent implementation.
func TestSecp256k1AgainstBtcec(t *testing.T) {
	cp := CurveByName("secp256k1")
	dom, err := cp.Domain()
	if err != nil {
		t.Fatalf("Domain: %v", err)
	}
	d, err := dom.ScalarField.FromHex(cp.D)
	if err != nil {
		t.Fatalf("FromHex: %v", err)
	}

	q := dom.G.Multiply(d)
	qx, err := q.X()
	if err != nil {
		t.Fatalf("X: %v", err)
	}
	qy, err := q.Y()
	if err != nil {
		t.Fatalf("Y: %v", err)
	}

	_, pub := btcec.PrivKeyFromBytes(d.Bytes())
	want := pub.SerializeUncompressed()
	got := append([]byte{0x04}, append(qx.Bytes(), qy.Bytes()...)...)
	if !bytes.Equal(got, want) {
		t.Errorf("public point disagrees with btcec:\n got  %x\n want %x", got, want)
	}
}
