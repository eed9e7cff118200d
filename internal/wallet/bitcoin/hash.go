// Package bitcoin holds the Bitcoin protocol hash primitives shared by the
// segwit and P2SH encoders.
package bitcoin

import (
	"crypto/sha256"

	// RIPEMD160 is deprecated but REQUIRED by Bitcoin protocol (BIP-13, BIP-16).
	// Witness programs and script hashes are both RIPEMD160(SHA256(x)).
	//nolint:gosec,staticcheck // G507,SA1019: RIPEMD160 required by Bitcoin protocol
	"golang.org/x/crypto/ripemd160"
)

// Hash160Size is the length of a Hash160 digest in bytes.
const Hash160Size = ripemd160.Size

// Hash160 computes RIPEMD160(SHA256(data)). It is the 20-byte witness program
// of a P2WPKH output when data is a compressed public key, and the script hash
// of a P2SH output when data is a redeem script.
//
//nolint:gosec // G406: RIPEMD160 usage required by Bitcoin spec
func Hash160(data []byte) []byte {
	sha256Hash := sha256.Sum256(data)
	ripemd := ripemd160.New()
	ripemd.Write(sha256Hash[:])
	return ripemd.Sum(nil)
}
