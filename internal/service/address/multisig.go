package address

import (
	"encoding/hex"
	"time"

	"github.com/mrz1836/addrgen/internal/metrics"
	"github.com/mrz1836/addrgen/internal/multisig"
	"github.com/mrz1836/addrgen/internal/validation"
	addrerr "github.com/mrz1836/addrgen/pkg/errors"
)

// ValidateMultisigPolicy checks an n-of-m policy and then every public key.
// Policy violations come first, in rule order, followed by one violation per
// badly encoded key.
func (s *Service) ValidateMultisigPolicy(n, m int, publicKeys []string) validation.Result {
	start := time.Now()
	result := multisig.ValidatePolicy(n, m, publicKeys).Merge(multisig.ValidateKeys(publicKeys))
	s.metrics.RecordOperation(metrics.OpValidateMultisigPolicy, time.Since(start), result.Err())
	return result
}

// DeriveMultisigAddress returns the P2SH address of an n-of-m multisig policy.
// Key order is significant.
func (s *Service) DeriveMultisigAddress(n, m int, publicKeys []string) (string, error) {
	out, err := s.DeriveMultisig(n, m, publicKeys)
	if err != nil {
		return "", err
	}
	return out.Address, nil
}

// DeriveMultisig is DeriveMultisigAddress returning the redeem script alongside the address.
func (s *Service) DeriveMultisig(n, m int, publicKeys []string) (*MultisigAddress, error) {
	start := time.Now()
	out, err := s.deriveMultisig(n, m, publicKeys)
	s.metrics.RecordOperation(metrics.OpDeriveMultisigAddress, time.Since(start), err)

	if err != nil {
		s.log.Error("multisig derivation failed: code=%s n=%d m=%d keys=%d", addrerr.Code(err), n, m, len(publicKeys))
		return nil, err
	}
	s.log.Debug("derived %d-of-%d multisig address %s", n, m, out.Address)
	return out, nil
}

func (s *Service) deriveMultisig(n, m int, publicKeys []string) (*MultisigAddress, error) {
	addr, script, err := multisig.DeriveAddress(multisig.Policy{N: n, M: m, Keys: publicKeys}, s.net)
	if err != nil {
		return nil, err
	}
	if addr == "" {
		return nil, addrerr.ErrDerivationFailure
	}

	disasm, err := multisig.DisassembleScript(script)
	if err != nil {
		return nil, err
	}

	return &MultisigAddress{
		Address:      addr,
		Required:     n,
		Total:        m,
		RedeemScript: hex.EncodeToString(script),
		Disassembly:  disasm,
	}, nil
}
