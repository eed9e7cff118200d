package cli

import (
	"github.com/spf13/cobra"

	"github.com/mrz1836/addrgen/internal/output"
	"github.com/mrz1836/addrgen/internal/wallet"
)

// defaultSegwitPath is the first BIP84 receive address.
const defaultSegwitPath = "m/84'/0'/0'/0/0"

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level flag variables
var (
	segwitMnemonic string
	segwitPath     string
)

// segwitCmd derives a native segwit address.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var segwitCmd = &cobra.Command{
	Use:   "segwit",
	Short: "Derive a native segwit address from a seed phrase",
	Long: `Derive a native segwit (P2WPKH, bech32) address from a BIP39 seed phrase
along a five-level BIP32 path.

The seed phrase must have between 12 and 24 words. Words missing from the
BIP39 list are reported as warnings with the closest match; they do not stop
derivation, since the checksum is not enforced.

When --mnemonic is omitted the phrase is read from the terminal without echo.
Passing it as a flag leaves it in shell history.`,
	Example: `  addrgen segwit --path "m/84'/0'/0'/0/0"
  addrgen segwit --mnemonic "abandon abandon ... about" --path "m/44'/60'/0'/0/0"
  addrgen segwit -v -o text`,
	Args: cobra.NoArgs,
	RunE: runSegwit,
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for command registration
func init() {
	rootCmd.AddCommand(segwitCmd)
	segwitCmd.GroupID = groupAddress

	segwitCmd.Flags().StringVar(&segwitMnemonic, "mnemonic", "", "BIP39 seed phrase (prompted when omitted)")
	segwitCmd.Flags().StringVar(&segwitPath, "path", defaultSegwitPath, "BIP32 derivation path, m/a/b/c/d/e")
}

func runSegwit(cmd *cobra.Command, _ []string) error {
	phrase := segwitMnemonic
	if phrase == "" {
		var err error
		phrase, err = promptMnemonicFn()
		if err != nil {
			return err
		}
	}

	if typos := wallet.DetectTypos(phrase); len(typos) > 0 {
		output.Warnf(cmd.ErrOrStderr(), "seed phrase contains unknown words\n%s", wallet.FormatTypoSuggestions(typos))
	}

	result, err := newService().DeriveSegwit(phrase, segwitPath)
	if err != nil {
		return err
	}

	if formatter.IsJSON() {
		return formatter.Emit(result.Address, result)
	}
	if cfg.IsVerbose() {
		return formatter.EmitFields(output.NewFields().
			Add("address", result.Address).
			Add("path", result.Path).
			Add("public_key", result.PublicKey))
	}
	return formatter.Emit(result.Address, result)
}
