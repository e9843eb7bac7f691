// Package cipher implements the fixed byte-level scheme used by .exdf
// data files: each byte has its bit order reversed, then is XORed with
// a constant. There is exactly one supported scheme; nothing here is
// configurable.
package cipher

import "math/bits"

// xorKey is applied after the bit reversal. The two steps do not
// commute, so the order is part of the scheme.
const xorKey = 0xAA

// Decrypt maps encrypted bytes to plaintext. It is a pure function,
// defined for any input length including zero, and never fails.
func Decrypt(data []byte) []byte {
	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = bits.Reverse8(b) ^ xorKey
	}
	return out
}

// Encrypt is the exact inverse of Decrypt: XOR first, then reverse the
// bit order.
func Encrypt(data []byte) []byte {
	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = bits.Reverse8(b ^ xorKey)
	}
	return out
}
