package wallet

import (
	"strings"
	"testing"
	"unicode/utf8"
)

// FuzzNormalizeMnemonic tests that normalization never panics and always
// returns valid UTF-8 with whitespace collapsed to single spaces.
func FuzzNormalizeMnemonic(f *testing.F) {
	f.Add("")
	f.Add("abandon")
	f.Add("  abandon  abandon  ")
	f.Add("ABANDON ABILITY")
	f.Add("\t\n\r abandon \t ability \n")
	f.Add(abandonMnemonic)
	f.Add("café naïve")

	f.Fuzz(func(t *testing.T, input string) {
		if !utf8.ValidString(input) {
			t.Skip()
		}
		result := NormalizeMnemonic(input)

		if !utf8.ValidString(result) {
			t.Errorf("NormalizeMnemonic returned invalid UTF-8 for input %q", input)
		}
		if strings.ContainsAny(result, "\t\n\r\v\f") {
			t.Errorf("NormalizeMnemonic kept control whitespace for input %q", input)
		}
	})
}

// FuzzValidateMnemonic tests that validation never panics and only accepts
// 12 to 24 words.
func FuzzValidateMnemonic(f *testing.F) {
	f.Add(abandonMnemonic)
	f.Add("")
	f.Add("abandon")
	f.Add("invalid mnemonic phrase with many words that should pass the length check")
	f.Add("   ")
	f.Add("\x00\x01\x02")

	f.Fuzz(func(t *testing.T, input string) {
		words := len(strings.Fields(input))
		ok := ValidateMnemonic(input).OK()
		if ok != (words >= MinMnemonicWords && words <= MaxMnemonicWords) {
			t.Errorf("ValidateMnemonic(%q) = %v with %d words", input, ok, words)
		}
	})
}

// FuzzValidatePath tests that path validation and parsing never panic and
// that parsed paths always have the validated depth.
func FuzzValidatePath(f *testing.F) {
	f.Add("m/44'/60'/0'/0/0")
	f.Add("m/44'/60'/0'/0/")
	f.Add("m/84h/0h/0h/0/0")
	f.Add("")
	f.Add("m//////")
	f.Add("m/4294967295/0/0/0/0")

	f.Fuzz(func(t *testing.T, input string) {
		valid := ValidatePath(input).OK()
		indices, err := ParsePath(input)
		if err == nil && valid && len(indices) != PathSegments-1 {
			t.Errorf("ParsePath(%q) returned %d indices for a valid path", input, len(indices))
		}
	})
}

// FuzzSuggestWord tests that word suggestion never panics
// and only ever suggests words from the list.
func FuzzSuggestWord(f *testing.F) {
	f.Add("abandon")
	f.Add("ability")
	f.Add("zoo")
	f.Add("abondon") //nolint:misspell // intentional typo
	f.Add("zooo")
	f.Add("")
	f.Add("verylongwordthatdoesnotexistinthewordlist")
	f.Add("\x00\x01\x02")

	f.Fuzz(func(t *testing.T, input string) {
		suggestion := SuggestWord(input)
		if suggestion != "" && !IsValidWord(suggestion) {
			t.Errorf("SuggestWord returned invalid word %q for input %q", suggestion, input)
		}
	})
}

// FuzzDetectTypos tests that typo detection never panics
// and returns reasonable results.
func FuzzDetectTypos(f *testing.F) {
	f.Add("")
	f.Add("abandon ability")
	f.Add("abondon abaility") //nolint:misspell // intentional typos
	f.Add(abandonMnemonic)

	f.Fuzz(func(t *testing.T, input string) {
		for _, typo := range DetectTypos(input) {
			if typo.Index < 0 {
				t.Errorf("DetectTypos returned negative index for input %q", input)
			}
			if typo.Word == "" {
				t.Errorf("DetectTypos returned empty word for input %q", input)
			}
			if typo.Suggestion != "" && !IsValidWord(typo.Suggestion) {
				t.Errorf("DetectTypos returned invalid suggestion %q for input %q", typo.Suggestion, input)
			}
		}
	})
}
