// Package multisig builds n-of-m CHECKMULTISIG redeem scripts and encodes
// them as pay-to-script-hash addresses.
package multisig

import (
	"github.com/mrz1836/addrgen/internal/validation"
	addrerr "github.com/mrz1836/addrgen/pkg/errors"
)

// MaxPublicKeys is the largest m a P2SH multisig redeem script can carry:
// 15 compressed keys keep the script under the 520-byte push limit.
const MaxPublicKeys = 15

// Policy is an n-of-m spending policy over an ordered list of hex public keys.
type Policy struct {
	N    int
	M    int
	Keys []string
}

// Validate is shorthand for ValidatePolicy(p.N, p.M, p.Keys).
func (p Policy) Validate() validation.Result {
	return ValidatePolicy(p.N, p.M, p.Keys)
}

// ValidatePolicy checks the shape of an n-of-m policy. Every rule is checked
// and every violation is reported, in rule order.
func ValidatePolicy(n, m int, publicKeys []string) validation.Result {
	var result validation.Result

	if n > m {
		result.Add(addrerr.ErrThresholdExceedsTotal)
	}
	if n <= 0 || m <= 0 {
		result.Add(addrerr.ErrNonPositivePolicy)
	}
	if m != len(publicKeys) {
		result.Add(addrerr.ErrKeyCountMismatch)
	}
	if m > MaxPublicKeys {
		result.Add(addrerr.ErrPolicyExceedsProtocolLimit)
	}

	return result
}
