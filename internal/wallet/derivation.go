package wallet

import (
	"encoding/hex"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/decred/dcrd/hdkeychain/v3"

	"github.com/mrz1836/addrgen/internal/addrcrypto"
	addrerr "github.com/mrz1836/addrgen/pkg/errors"
)

// DefaultNetwork is the network addresses are encoded for.
//
//nolint:gochecknoglobals // Read-only network parameters
var DefaultNetwork = &chaincfg.MainNetParams

// hdNetParams satisfies hdkeychain.NetworkParams using the HD version bytes
// of a btcd network.
type hdNetParams struct {
	*chaincfg.Params
}

func (p hdNetParams) HDPrivKeyVersion() [4]byte { return p.HDPrivateKeyID }
func (p hdNetParams) HDPubKeyVersion() [4]byte  { return p.HDPublicKeyID }

// Key is a node of the key tree reached by walking a derivation path.
type Key struct {
	path string
	ext  *hdkeychain.ExtendedKey
}

// Path returns the derivation path the key was reached by.
func (k *Key) Path() string {
	return k.path
}

// PublicKey returns the 33-byte compressed public key.
func (k *Key) PublicKey() []byte {
	return k.ext.SerializedPubKey()
}

// PublicKeyHex returns the compressed public key in hex.
func (k *Key) PublicKeyHex() string {
	return hex.EncodeToString(k.PublicKey())
}

// Zero clears the private material held by the key. The key is unusable afterwards.
func (k *Key) Zero() {
	if k.ext != nil {
		k.ext.Zero()
	}
}

// DeriveKey expands a seed phrase and walks the key tree along path.
//
// Both the phrase and the path are validated first; any violation yields
// ErrDerivationRejected wrapping every violation found. A path that has the
// right depth but a malformed segment is also rejected. Errors raised by the
// key tree itself yield ErrDerivationFailure.
//
// The caller must call Zero on the returned key once done with it.
func DeriveKey(phrase, path string, net *chaincfg.Params) (*Key, error) {
	result := ValidateMnemonic(phrase).Merge(ValidatePath(path))
	if !result.OK() {
		return nil, addrerr.WithCause(addrerr.ErrDerivationRejected, result.Err())
	}

	indices, err := ParsePath(path)
	if err != nil {
		return nil, addrerr.WithCause(addrerr.ErrDerivationRejected, err)
	}

	if net == nil {
		net = DefaultNetwork
	}

	seed := addrcrypto.SecureBytesFromSlice(MnemonicToSeed(phrase))
	defer seed.Destroy()

	ext, err := hdkeychain.NewMaster(seed.Bytes(), hdNetParams{net})
	if err != nil {
		return nil, addrerr.WithCause(addrerr.ErrDerivationFailure, err)
	}

	for _, index := range indices {
		child, err := ext.ChildBIP32Std(index)
		ext.Zero()
		if err != nil {
			return nil, addrerr.WithCause(addrerr.ErrDerivationFailure, err)
		}
		ext = child
	}

	return &Key{path: path, ext: ext}, nil
}
