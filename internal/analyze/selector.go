package analyze

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// Selector is the 4-byte dispatch tag prefixing every call payload.
type Selector [4]byte

// ComputeSelector derives the selector for a declared label: the first four
// bytes of blake2b-256 over the label bytes. Trait-qualified labels hash
// with their "Group::" prefix intact.
func ComputeSelector(label string) Selector {
	sum := blake2b.Sum256([]byte(label))
	var s Selector
	copy(s[:], sum[:4])
	return s
}

// Hex renders the selector as 0xaabbccdd.
func (s Selector) Hex() string {
	return "0x" + hex.EncodeToString(s[:])
}
