package wallet

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/decred/dcrd/hdkeychain/v3"

	"github.com/mrz1836/addrgen/internal/validation"
	addrerr "github.com/mrz1836/addrgen/pkg/errors"
)

// PathSegments is the number of "/"-separated segments a derivation path must
// have, counting the leading "m": m / purpose' / coin_type' / account' / change / index.
const PathSegments = 6

var (
	// ErrInvalidPathRoot indicates the path does not start at the master key.
	ErrInvalidPathRoot = errors.New("derivation path must start with m")

	// ErrInvalidPathSegment indicates a path segment is not a valid child index.
	ErrInvalidPathSegment = errors.New("invalid derivation path segment")
)

// ValidatePath checks that a derivation path has exactly six segments.
// It does not check that the segments parse; ParsePath does that during the
// derivation walk, so a path like "m/44'/60'/0'/0/" passes here and is
// rejected at derivation time.
func ValidatePath(path string) validation.Result {
	var result validation.Result

	if len(strings.Split(path, "/")) != PathSegments {
		result.Add(addrerr.ErrInvalidPathDepth)
	}

	return result
}

// ParsePath converts a path such as "m/44'/0'/0'/0/5" into child indices.
// Hardened segments may be marked with ', h or H.
func ParsePath(path string) ([]uint32, error) {
	segments := strings.Split(path, "/")
	if segments[0] != "m" && segments[0] != "M" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPathRoot, segments[0])
	}

	indices := make([]uint32, 0, len(segments)-1)
	for pos, segment := range segments[1:] {
		index, err := parseSegment(segment)
		if err != nil {
			return nil, fmt.Errorf("%w at level %d: %q", ErrInvalidPathSegment, pos+1, segment)
		}
		indices = append(indices, index)
	}

	return indices, nil
}

// parseSegment parses one child index with an optional hardened marker.
func parseSegment(segment string) (uint32, error) {
	hardened := false
	if n := len(segment); n > 0 {
		switch segment[n-1] {
		case '\'', 'h', 'H':
			hardened = true
			segment = segment[:n-1]
		}
	}

	// ParseUint accepts a leading "+", plain digits only here
	if segment == "" || strings.ContainsAny(segment, "+-") {
		return 0, ErrInvalidPathSegment
	}

	value, err := strconv.ParseUint(segment, 10, 32)
	if err != nil {
		return 0, err
	}
	if value >= uint64(hdkeychain.HardenedKeyStart) {
		return 0, ErrInvalidPathSegment
	}

	index := uint32(value)
	if hardened {
		index += hdkeychain.HardenedKeyStart
	}
	return index, nil
}

// FormatPath renders child indices back into path notation using ' for hardened.
func FormatPath(indices []uint32) string {
	var b strings.Builder
	b.WriteString("m")
	for _, index := range indices {
		b.WriteByte('/')
		if index >= hdkeychain.HardenedKeyStart {
			b.WriteString(strconv.FormatUint(uint64(index-hdkeychain.HardenedKeyStart), 10))
			b.WriteByte('\'')
			continue
		}
		b.WriteString(strconv.FormatUint(uint64(index), 10))
	}
	return b.String()
}
