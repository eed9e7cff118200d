package multisig

import (
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/txscript"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/mrz1836/addrgen/internal/validation"
	addrerr "github.com/mrz1836/addrgen/pkg/errors"
)

// MaxRedeemScriptSize is the largest redeem script a P2SH spend can push.
const MaxRedeemScriptSize = txscript.MaxScriptElementSize

// ValidateKeys checks that every key is a hex encoded, compressed and valid
// secp256k1 public key. One violation is reported per bad key.
func ValidateKeys(publicKeys []string) validation.Result {
	var result validation.Result
	for i, key := range publicKeys {
		if _, err := decodeKey(key); err != nil {
			result.Add(addrerr.Violation(addrerr.ErrInvalidPublicKeyEncoding,
				fmt.Sprintf("public key at index %d is not a valid hex encoded compressed public key", i)))
		}
	}
	return result
}

// decodeKey returns the 33 bytes of a compressed public key that lies on the curve.
func decodeKey(key string) ([]byte, error) {
	raw, err := hex.DecodeString(key)
	if err != nil {
		return nil, err
	}
	if len(raw) != secp256k1.PubKeyBytesLenCompressed {
		return nil, fmt.Errorf("public key is %d bytes, want %d", len(raw), secp256k1.PubKeyBytesLenCompressed)
	}
	if raw[0] != secp256k1.PubKeyFormatCompressedEven && raw[0] != secp256k1.PubKeyFormatCompressedOdd {
		return nil, fmt.Errorf("public key prefix %#02x is not compressed", raw[0])
	}
	if _, err := secp256k1.ParsePubKey(raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// BuildRedeemScript assembles OP_n <key_1> ... <key_m> OP_m OP_CHECKMULTISIG
// with the keys in the order given. The policy and every key are checked
// first; violations come back as a *errors.ValidationError.
func BuildRedeemScript(n int, publicKeys []string) ([]byte, error) {
	result := ValidatePolicy(n, len(publicKeys), publicKeys).Merge(ValidateKeys(publicKeys))
	if !result.OK() {
		return nil, result.Err()
	}

	builder := txscript.NewScriptBuilder()
	builder.AddInt64(int64(n))
	for _, key := range publicKeys {
		raw, err := decodeKey(key)
		if err != nil {
			return nil, err
		}
		builder.AddData(raw)
	}
	builder.AddInt64(int64(len(publicKeys)))
	builder.AddOp(txscript.OP_CHECKMULTISIG)

	script, err := builder.Script()
	if err != nil {
		return nil, addrerr.WithCause(addrerr.ErrDerivationFailure, err)
	}
	if len(script) > MaxRedeemScriptSize {
		return nil, addrerr.WithDetails(addrerr.ErrPolicyExceedsProtocolLimit, map[string]string{
			"script_size": fmt.Sprint(len(script)),
		})
	}

	return script, nil
}

// DisassembleScript renders a script as opcodes for diagnostics. A malformed
// script is rendered up to the bad opcode followed by an error marker, and
// the parse error is returned with it.
func DisassembleScript(script []byte) (string, error) {
	disasm, err := txscript.DisasmString(script)
	if err != nil {
		return disasm, addrerr.WithCause(addrerr.ErrDerivationFailure, err)
	}
	return disasm, nil
}
