package secrets

import (
	"bytes"
	"errors"
	"testing"

	kerrors "github.com/PolarWolf314/cipherkit/internal/errors"
)

func TestDeriveSessionKey_Deterministic(t *testing.T) {
	k1, err := DeriveSessionKey(18, 23, 5)
	if err != nil {
		t.Fatalf("DeriveSessionKey failed: %v", err)
	}
	k2, err := DeriveSessionKey(18, 23, 5)
	if err != nil {
		t.Fatalf("DeriveSessionKey failed: %v", err)
	}
	if k1 != k2 {
		t.Error("same inputs should derive the same key")
	}
}

func TestDeriveSessionKey_ParamsAffectKey(t *testing.T) {
	k1, _ := DeriveSessionKey(18, 23, 5)
	k2, _ := DeriveSessionKey(18, 23, 7)
	k3, _ := DeriveSessionKey(19, 23, 5)
	if k1 == k2 {
		t.Error("different generators should derive different keys")
	}
	if k1 == k3 {
		t.Error("different secrets should derive different keys")
	}
}

func TestSealOpen_RoundTrip(t *testing.T) {
	key, _ := DeriveSessionKey(18, 23, 5)
	msg := []byte("meet at the usual place")

	box, err := Seal(key, msg)
	if err != nil {
		t.Fatalf("Seal failed: %v", err)
	}
	if len(box) != nonceSize+len(msg)+16 {
		t.Errorf("box length = %d, want %d", len(box), nonceSize+len(msg)+16)
	}

	got, err := Open(key, box)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if !bytes.Equal(got, msg) {
		t.Errorf("Open = %q, want %q", got, msg)
	}
}

func TestSeal_NonDeterministic(t *testing.T) {
	key, _ := DeriveSessionKey(18, 23, 5)
	b1, _ := Seal(key, []byte("same"))
	b2, _ := Seal(key, []byte("same"))
	if bytes.Equal(b1, b2) {
		t.Error("sealing twice should use different nonces")
	}
}

func TestOpen_WrongKey(t *testing.T) {
	k1, _ := DeriveSessionKey(18, 23, 5)
	k2, _ := DeriveSessionKey(17, 23, 5)
	box, _ := Seal(k1, []byte("secret"))

	if _, err := Open(k2, box); !errors.Is(err, kerrors.ErrOpenFailed) {
		t.Errorf("Open with wrong key error = %v, want ErrOpenFailed", err)
	}
}

func TestOpen_Tampered(t *testing.T) {
	key, _ := DeriveSessionKey(18, 23, 5)
	box, _ := Seal(key, []byte("secret"))
	box[len(box)-1] ^= 0xff

	if _, err := Open(key, box); !errors.Is(err, kerrors.ErrOpenFailed) {
		t.Errorf("Open of tampered box error = %v, want ErrOpenFailed", err)
	}
}

func TestOpen_TooShort(t *testing.T) {
	key, _ := DeriveSessionKey(18, 23, 5)
	if _, err := Open(key, make([]byte, 10)); !errors.Is(err, kerrors.ErrOpenFailed) {
		t.Errorf("Open of short box error = %v, want ErrOpenFailed", err)
	}
}
