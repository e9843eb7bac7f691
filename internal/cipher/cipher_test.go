package cipher

import (
	"bytes"
	"testing"
)

// reverseBits is an independent reference for the bit permutation,
// written out longhand so the test does not share code with the
// implementation.
func reverseBits(b byte) byte {
	var r byte
	for i := 0; i < 8; i++ {
		if b&(1<<i) != 0 {
			r |= 1 << (7 - i)
		}
	}
	return r
}

func TestDecryptKnownVectors(t *testing.T) {
	vectors := []struct{ in, want byte }{
		{0x00, 0xAA},
		{0xFF, 0x55},
		{0x01, 0x2A},
	}
	for _, v := range vectors {
		got := Decrypt([]byte{v.in})
		if len(got) != 1 || got[0] != v.want {
			t.Fatalf("Decrypt(%#02x) = %#02x, want %#02x", v.in, got[0], v.want)
		}
	}
}

func TestDecryptAllByteValues(t *testing.T) {
	for i := 0; i < 256; i++ {
		b := byte(i)
		want := reverseBits(b) ^ 0xAA
		got := Decrypt([]byte{b})[0]
		if got != want {
			t.Fatalf("Decrypt(%#02x) = %#02x, want %#02x", b, got, want)
		}
	}
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	var all []byte
	for i := 0; i < 256; i++ {
		all = append(all, byte(i))
	}
	if got := Decrypt(Encrypt(all)); !bytes.Equal(got, all) {
		t.Fatalf("Decrypt(Encrypt(x)) != x")
	}
	if got := Encrypt(Decrypt(all)); !bytes.Equal(got, all) {
		t.Fatalf("Encrypt(Decrypt(x)) != x")
	}
}

// The scheme is reverse-then-XOR; XOR-then-reverse gives a different
// value for most bytes, so swapping the steps must not be equivalent.
func TestStepOrderMatters(t *testing.T) {
	swapped := reverseBits(0x01 ^ 0xAA)
	got := Decrypt([]byte{0x01})[0]
	if got == swapped {
		t.Fatalf("step order collapsed: both orders give %#02x", got)
	}
	if got != 0x2A {
		t.Fatalf("Decrypt(0x01) = %#02x, want 0x2A", got)
	}
}

func TestEmptyInput(t *testing.T) {
	if got := Decrypt(nil); len(got) != 0 {
		t.Fatalf("Decrypt(nil) returned %d bytes", len(got))
	}
	if got := Encrypt([]byte{}); len(got) != 0 {
		t.Fatalf("Encrypt(empty) returned %d bytes", len(got))
	}
}

func TestDecryptDoesNotMutateInput(t *testing.T) {
	in := []byte{0x01, 0x02, 0x03}
	Decrypt(in)
	if !bytes.Equal(in, []byte{0x01, 0x02, 0x03}) {
		t.Fatalf("input mutated: %v", in)
	}
}
