// Package wallet provides BIP39 seed expansion, BIP32 key-tree derivation and
// native segwit address encoding for single-key addresses.
package wallet

import (
	"math"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/tyler-smith/go-bip39"
	"golang.org/x/text/unicode/norm"

	"github.com/mrz1836/addrgen/internal/validation"
	addrerr "github.com/mrz1836/addrgen/pkg/errors"
)

// Word count bounds for a seed phrase (128 to 256 bits of entropy).
const (
	MinMnemonicWords = 12
	MaxMnemonicWords = 24
)

// ValidateMnemonic checks that a seed phrase has between 12 and 24 words.
// Words are not checked against the BIP39 word list and the checksum is not
// verified; seed expansion does not need either.
func ValidateMnemonic(phrase string) validation.Result {
	var result validation.Result

	count := len(strings.Fields(phrase))
	if count < MinMnemonicWords || count > MaxMnemonicWords {
		result.Add(addrerr.ErrInvalidMnemonicLength)
	}

	return result
}

// NormalizeMnemonic collapses whitespace runs to single spaces and applies
// NFKD normalization as BIP39 requires.
func NormalizeMnemonic(phrase string) string {
	return norm.NFKD.String(strings.Join(strings.Fields(phrase), " "))
}

// MnemonicToSeed expands a seed phrase into a 64-byte BIP39 seed with no passphrase.
// The caller owns the returned slice and should zero it after use.
func MnemonicToSeed(phrase string) []byte {
	return mnemonicToSeed(phrase, "")
}

func mnemonicToSeed(phrase, passphrase string) []byte {
	return bip39.NewSeed(NormalizeMnemonic(phrase), norm.NFKD.String(passphrase))
}

// IsValidWord checks if a word is in the BIP39 English word list.
func IsValidWord(word string) bool {
	_, ok := bip39.GetWordIndex(strings.ToLower(word))
	return ok
}

// MaxTypoDistance is the maximum Levenshtein distance to consider a suggestion.
const MaxTypoDistance = 2

// TypoInfo describes a word that is not in the BIP39 word list.
type TypoInfo struct {
	// Index is the word position in the mnemonic (0-based).
	Index int
	// Word is the original (possibly misspelled) word.
	Word string
	// Suggestion is the closest BIP39 word, or empty if none found.
	Suggestion string
	// Distance is the Levenshtein distance to the suggestion.
	Distance int
}

// SuggestWord finds the closest BIP39 word to the input using Levenshtein distance.
// Returns empty string if no word is within MaxTypoDistance.
func SuggestWord(input string) string {
	input = strings.ToLower(input)

	minDist := math.MaxInt
	var suggestion string

	for _, word := range bip39.GetWordList() {
		dist := levenshtein.ComputeDistance(input, word)
		if dist == 0 {
			return word
		}
		if dist < minDist {
			minDist = dist
			suggestion = word
		}
	}

	if minDist <= MaxTypoDistance {
		return suggestion
	}
	return ""
}

// DetectTypos returns every word of the phrase that is not in the BIP39 word
// list, with the closest suggestion when one exists. Typos never fail
// derivation; they are only surfaced as hints.
func DetectTypos(phrase string) []TypoInfo {
	var typos []TypoInfo

	for i, word := range strings.Fields(phrase) {
		if IsValidWord(word) {
			continue
		}
		suggestion := SuggestWord(word)
		distance := 0
		if suggestion != "" {
			distance = levenshtein.ComputeDistance(strings.ToLower(word), suggestion)
		}
		typos = append(typos, TypoInfo{
			Index:      i,
			Word:       word,
			Suggestion: suggestion,
			Distance:   distance,
		})
	}

	return typos
}

// FormatTypoSuggestions formats typo information into human-readable lines.
func FormatTypoSuggestions(typos []TypoInfo) string {
	if len(typos) == 0 {
		return ""
	}

	var b strings.Builder
	for i, typo := range typos {
		if i > 0 {
			b.WriteByte('\n')
		}
		// 1-indexed for humans
		b.WriteString("Word ")
		b.WriteString(itoa(typo.Index + 1))
		b.WriteString(": '")
		b.WriteString(typo.Word)
		b.WriteByte('\'')
		if typo.Suggestion != "" {
			b.WriteString(" - did you mean '")
			b.WriteString(typo.Suggestion)
			b.WriteString("'?")
		} else {
			b.WriteString(" is not a valid BIP39 word")
		}
	}
	return b.String()
}

// itoa converts a non-negative int to string.
func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var digits []byte
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return string(digits)
}
