package wallet

import (
	"fmt"
	"strconv"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"

	"github.com/mrz1836/addrgen/internal/wallet/bitcoin"
	addrerr "github.com/mrz1836/addrgen/pkg/errors"
)

// CompressedPubKeyLen is the length of a SEC1 compressed public key.
const CompressedPubKeyLen = 33

// EncodeSegwit returns the native segwit (P2WPKH, bech32 version 0) address of
// a compressed public key.
func EncodeSegwit(pubKey []byte, net *chaincfg.Params) (string, error) {
	if len(pubKey) != CompressedPubKeyLen {
		return "", addrerr.WithDetails(addrerr.ErrInvalidPublicKeyEncoding, map[string]string{
			"length": strconv.Itoa(len(pubKey)),
		})
	}
	if net == nil {
		net = DefaultNetwork
	}

	addr, err := btcutil.NewAddressWitnessPubKeyHash(bitcoin.Hash160(pubKey), net)
	if err != nil {
		return "", fmt.Errorf("failed to encode witness address: %w", err)
	}
	return addr.EncodeAddress(), nil
}

// DeriveSegwitAddress derives the native segwit address at path for a seed phrase.
func DeriveSegwitAddress(phrase, path string, net *chaincfg.Params) (string, error) {
	key, err := DeriveKey(phrase, path, net)
	if err != nil {
		return "", err
	}
	defer key.Zero()

	return EncodeSegwit(key.PublicKey(), net)
}
