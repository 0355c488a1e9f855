// Package inktypes is the runtime support library for generated contract
// clients. It carries the connection interfaces a client dispatches through
// and the value types contract data maps onto, with SCALE wire behavior on
// everything the codec's reflection cannot carry natively.
//
// Generated code imports this package and the SCALE codec, nothing else.
package inktypes

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// AccountID is a 32-byte account identifier in raw key form. SS58 rendering
// is a transport concern and intentionally absent.
type AccountID [32]byte

// AccountIDFromBytes copies a 32-byte slice into an AccountID.
func AccountIDFromBytes(b []byte) (AccountID, error) {
	var a AccountID
	if len(b) != len(a) {
		return a, fmt.Errorf("account id must be %d bytes, got %d", len(a), len(b))
	}
	copy(a[:], b)
	return a, nil
}

// Hex renders the account id as 0x-prefixed lowercase hex.
func (a AccountID) Hex() string {
	return "0x" + hex.EncodeToString(a[:])
}

// Hash is a 32-byte blake2b-256 digest. Contract code hashes use it.
type Hash [32]byte

// Hex renders the hash as 0x-prefixed lowercase hex.
func (h Hash) Hex() string {
	return "0x" + hex.EncodeToString(h[:])
}

// CodeHashOf computes the blake2b-256 hash of contract code. Generated
// upload routines use it to check a blob against the hash baked into the
// client before submitting.
func CodeHashOf(code []byte) Hash {
	return Hash(blake2b.Sum256(code))
}

// Balance is the native token amount carried by payable calls.
type Balance = U128
