package multisig

import (
	"strconv"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"

	"github.com/mrz1836/addrgen/internal/wallet"
	"github.com/mrz1836/addrgen/internal/wallet/bitcoin"
	addrerr "github.com/mrz1836/addrgen/pkg/errors"
)

// EncodeP2SH returns the base58check pay-to-script-hash address of a redeem script.
func EncodeP2SH(script []byte, net *chaincfg.Params) (string, error) {
	if len(script) == 0 || len(script) > MaxRedeemScriptSize {
		return "", addrerr.WithDetails(addrerr.ErrDerivationFailure, map[string]string{
			"script_size": strconv.Itoa(len(script)),
		})
	}
	if net == nil {
		net = wallet.DefaultNetwork
	}

	addr, err := btcutil.NewAddressScriptHashFromHash(bitcoin.Hash160(script), net)
	if err != nil {
		return "", addrerr.WithCause(addrerr.ErrDerivationFailure, err)
	}
	return addr.EncodeAddress(), nil
}

// DeriveAddress validates an n-of-m policy and returns its P2SH address
// together with the redeem script it commits to.
//
// Policy or key violations yield ErrDerivationRejected wrapping every
// violation found. Failures while assembling or hashing the script yield
// ErrDerivationFailure.
func DeriveAddress(p Policy, net *chaincfg.Params) (string, []byte, error) {
	result := p.Validate().Merge(ValidateKeys(p.Keys))
	if !result.OK() {
		return "", nil, addrerr.WithCause(addrerr.ErrDerivationRejected, result.Err())
	}

	script, err := BuildRedeemScript(p.N, p.Keys)
	if err != nil {
		if addrerr.KindOf(err) == addrerr.KindDerivation {
			return "", nil, err
		}
		return "", nil, addrerr.WithCause(addrerr.ErrDerivationRejected, err)
	}

	addr, err := EncodeP2SH(script, net)
	if err != nil {
		return "", nil, err
	}
	return addr, script, nil
}
