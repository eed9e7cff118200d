package address

import (
	"time"

	"github.com/mrz1836/addrgen/internal/metrics"
	"github.com/mrz1836/addrgen/internal/wallet"
	addrerr "github.com/mrz1836/addrgen/pkg/errors"
)

// DeriveSegwitAddress derives the native segwit address at path for a seed phrase.
//
// Input that fails validation yields ErrDerivationRejected wrapping every
// violation. Failures inside the key walk or the encoder yield
// ErrDerivationFailure. The seed phrase is never logged.
func (s *Service) DeriveSegwitAddress(phrase, path string) (string, error) {
	out, err := s.DeriveSegwit(phrase, path)
	if err != nil {
		return "", err
	}
	return out.Address, nil
}

// DeriveSegwit is DeriveSegwitAddress returning the public key alongside the address.
func (s *Service) DeriveSegwit(phrase, path string) (*SegwitAddress, error) {
	start := time.Now()
	out, err := s.deriveSegwit(phrase, path)
	s.metrics.RecordOperation(metrics.OpDeriveSegwitAddress, time.Since(start), err)

	if err != nil {
		s.log.Error("segwit derivation failed: code=%s path=%q", addrerr.Code(err), path)
		return nil, err
	}
	s.log.Debug("derived segwit address %s at %s", out.Address, out.Path)
	return out, nil
}

func (s *Service) deriveSegwit(phrase, path string) (*SegwitAddress, error) {
	key, err := wallet.DeriveKey(phrase, path, s.net)
	if err != nil {
		return nil, err
	}
	defer key.Zero()

	addr, err := wallet.EncodeSegwit(key.PublicKey(), s.net)
	if err != nil {
		return nil, addrerr.WithCause(addrerr.ErrDerivationFailure, err)
	}
	if addr == "" {
		return nil, addrerr.ErrDerivationFailure
	}

	return &SegwitAddress{
		Address:   addr,
		Path:      key.Path(),
		PublicKey: key.PublicKeyHex(),
	}, nil
}
