package wallet

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	addrerr "github.com/mrz1836/addrgen/pkg/errors"
)

const abandonMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

// BIP39 test vectors from https://github.com/trezor/python-mnemonic/blob/master/vectors.json
// (all use the passphrase "TREZOR")
//
//nolint:gochecknoglobals // BIP39 test vectors from official specification
var bip39TestVectors = []struct {
	mnemonic string
	seed     string
}{
	{
		mnemonic: abandonMnemonic,
		seed:     "c55257c360c07c72029aebc1b53c05ed0362ada38ead3e3e9efa3708e53495531f09a6987599d18264c1e1c92f2cf141630c7a3c4ab7c81b2f001698e7463b04",
	},
	{
		mnemonic: "legal winner thank year wave sausage worth useful legal winner thank yellow",
		seed:     "2e8905819b8723fe2c1d161860e5ee1830318dbf49a83bd451cfb8440c28bd6fa457fe1296106559a3c80937a1c1069be3a3a5bd381ee6260e8d9739fce1f607",
	},
}

func TestValidateMnemonic_WordCounts(t *testing.T) {
	t.Parallel()
	tests := []struct {
		words int
		ok    bool
	}{
		{0, false},
		{1, false},
		{11, false},
		{12, true},
		{15, true},
		{18, true},
		{24, true},
		{25, false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(itoa(tc.words), func(t *testing.T) {
			t.Parallel()
			phrase := strings.TrimSpace(strings.Repeat("abandon ", tc.words))
			result := ValidateMnemonic(phrase)
			assert.Equal(t, tc.ok, result.OK())
			if !tc.ok {
				assert.Equal(t, "seed phrase must has 12 to 24 words", result.Message())
				require.ErrorIs(t, result.Err(), addrerr.ErrInvalidMnemonicLength)
			}
		})
	}
}

func TestValidateMnemonic_NoChecksumOrWordListCheck(t *testing.T) {
	t.Parallel()

	// wrong checksum
	assert.True(t, ValidateMnemonic(strings.TrimSpace(strings.Repeat("abandon ", 12))).OK())
	// words outside the list
	assert.True(t, ValidateMnemonic("one two three four five six seven eight nine ten eleven twelve").OK())
}

func TestValidateMnemonic_Whitespace(t *testing.T) {
	t.Parallel()
	spaced := "  abandon\tabandon abandon  abandon abandon abandon\nabandon abandon abandon abandon abandon about  "
	assert.True(t, ValidateMnemonic(spaced).OK())
}

func TestNormalizeMnemonic(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"already normal", "abandon about", "abandon about"},
		{"extra spaces", "  abandon   about ", "abandon about"},
		{"tabs and newlines", "abandon\t\nabout", "abandon about"},
		{"case is kept", "Abandon ABOUT", "Abandon ABOUT"},
		{"empty", "", ""},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, NormalizeMnemonic(tc.input))
		})
	}
}

func TestMnemonicToSeed_WithTestVectors(t *testing.T) {
	t.Parallel()
	for _, tv := range bip39TestVectors {
		tv := tv
		t.Run(tv.mnemonic[:20], func(t *testing.T) {
			t.Parallel()
			seed := mnemonicToSeed(tv.mnemonic, "TREZOR")
			assert.Equal(t, tv.seed, hex.EncodeToString(seed))
		})
	}
}

func TestMnemonicToSeed_NoPassphrase(t *testing.T) {
	t.Parallel()
	seed := MnemonicToSeed(abandonMnemonic)
	require.Len(t, seed, 64)
	assert.Equal(t,
		"5eb00bbddcf069084889a8ab9155568165f5c453ccb85e70811aaed6f6da5fc19a5ac40b389cd370d086206dec8aa6c43daea6690f20ad3d8d48b2d2ce9e38e4",
		hex.EncodeToString(seed))
}

func TestMnemonicToSeed_WhitespaceInsensitive(t *testing.T) {
	t.Parallel()
	spaced := "  " + strings.ReplaceAll(abandonMnemonic, " ", "   ") + "\n"
	assert.Equal(t, MnemonicToSeed(abandonMnemonic), MnemonicToSeed(spaced))
}

func TestMnemonicToSeed_DifferentPassphrases(t *testing.T) {
	t.Parallel()
	assert.NotEqual(t, mnemonicToSeed(abandonMnemonic, ""), mnemonicToSeed(abandonMnemonic, "TREZOR"))
}

func TestIsValidWord(t *testing.T) {
	t.Parallel()
	assert.True(t, IsValidWord("abandon"))
	assert.True(t, IsValidWord("ZOO"))
	assert.False(t, IsValidWord("abondon")) //nolint:misspell // intentional typo
	assert.False(t, IsValidWord(""))
}

// TestSuggestWord tests Levenshtein-based typo detection.
//
//nolint:misspell // Intentional typos for testing
func TestSuggestWord(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    string
		expected string // empty string means no suggestion (too far)
	}{
		// Single character typos (intentional misspellings for test)
		{name: "off by one char", input: "abondon", expected: "abandon"},
		{name: "missing letter", input: "abadon", expected: "abandon"},
		{name: "extra letter", input: "abanddon", expected: "abandon"},
		{name: "swapped letters", input: "abadnon", expected: "abandon"},

		{name: "typo in word", input: "abouut", expected: "about"},
		{name: "zoo typo", input: "zooo", expected: "zoo"},
		{name: "letter typo", input: "lettter", expected: "letter"},

		// Exact match returns the word
		{name: "exact match", input: "abandon", expected: "abandon"},

		// Too different - no suggestion
		{name: "completely different", input: "xyzqwerty", expected: ""},
		{name: "very wrong", input: "abcdefg", expected: ""},

		// Case insensitive (intentional misspellings for test)
		{name: "uppercase typo", input: "ABONDON", expected: "abandon"},
		{name: "mixed case typo", input: "AbOndon", expected: "abandon"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, SuggestWord(tc.input))
		})
	}
}

// TestDetectTypos tests typo detection for entire mnemonic phrases.
//
//nolint:misspell // Intentional typos for testing
func TestDetectTypos(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		mnemonic    string
		typoIndices []int
		suggestions []string
	}{
		{
			name:        "single typo",
			mnemonic:    "abondon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about",
			typoIndices: []int{0},
			suggestions: []string{"abandon"},
		},
		{
			name:        "multiple typos",
			mnemonic:    "abondon abondon abandon abandon abandon abandon abandon abandon abandon abandon abandon abouut",
			typoIndices: []int{0, 1, 11},
			suggestions: []string{"abandon", "abandon", "about"},
		},
		{
			name:        "no typos",
			mnemonic:    abandonMnemonic,
			typoIndices: []int{},
			suggestions: []string{},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			result := DetectTypos(tc.mnemonic)
			require.Len(t, result, len(tc.typoIndices))
			for i, typo := range result {
				assert.Equal(t, tc.typoIndices[i], typo.Index)
				assert.Equal(t, tc.suggestions[i], typo.Suggestion)
				assert.Positive(t, typo.Distance)
			}
		})
	}
}

// TestDetectTypos_EdgeCases tests edge cases for typo detection.
//
//nolint:misspell // Intentional typos for testing
func TestDetectTypos_EdgeCases(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    string
		expected int // number of typos detected
	}{
		{name: "empty string", input: "", expected: 0},
		{name: "single valid word", input: "abandon", expected: 0},
		{name: "single invalid word", input: "abondon", expected: 1},
		{name: "all invalid", input: "xyzabc qwerty asdfgh", expected: 3},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Len(t, DetectTypos(tc.input), tc.expected)
		})
	}
}

//nolint:misspell // Intentional typos for testing
func TestFormatTypoSuggestions(t *testing.T) {
	t.Parallel()

	assert.Empty(t, FormatTypoSuggestions(nil))

	typos := []TypoInfo{
		{Index: 0, Word: "abondon", Suggestion: "abandon", Distance: 1},
		{Index: 11, Word: "xyzqwerty"},
	}
	expected := "Word 1: 'abondon' - did you mean 'abandon'?\n" +
		"Word 12: 'xyzqwerty' is not a valid BIP39 word"
	assert.Equal(t, expected, FormatTypoSuggestions(typos))
}
