package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mrz1836/addrgen/internal/output"
)

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level flag variables
var (
	multisigRequired   int
	multisigTotal      int
	multisigKeys       []string
	multisigShowScript bool
)

// multisigCmd builds an n-of-m P2SH multisig address.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var multisigCmd = &cobra.Command{
	Use:   "multisig",
	Short: "Build an n-of-m P2SH multisig address",
	Long: `Build a pay-to-script-hash address whose redeem script requires n signatures
out of m compressed public keys.

Keys are hex-encoded 33-byte compressed secp256k1 points and are used in the
order given; reordering them produces a different address. Every rule violation
is reported at once.`,
	Example: `  addrgen multisig -n 2 -m 3 --key 03a1... --key 02b2... --key 03c3...
  addrgen multisig -n 2 -m 2 --key 03a1...,02b2... --show-script
  addrgen multisig -n 1 -m 1 --key 03a1... -o json`,
	Args: cobra.NoArgs,
	RunE: runMultisig,
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for command registration
func init() {
	rootCmd.AddCommand(multisigCmd)
	multisigCmd.GroupID = groupAddress

	multisigCmd.Flags().IntVarP(&multisigRequired, "required", "n", 0, "signatures required (n)")
	multisigCmd.Flags().IntVarP(&multisigTotal, "total", "m", 0, "total number of keys (m)")
	multisigCmd.Flags().StringSliceVarP(&multisigKeys, "key", "k", nil, "compressed public key in hex; repeat or comma-separate")
	multisigCmd.Flags().BoolVar(&multisigShowScript, "show-script", false, "print the redeem script and its disassembly")

	_ = multisigCmd.MarkFlagRequired("required")
	_ = multisigCmd.MarkFlagRequired("total")
}

func runMultisig(_ *cobra.Command, _ []string) error {
	result, err := newService().DeriveMultisig(multisigRequired, multisigTotal, multisigKeys)
	if err != nil {
		return err
	}

	if formatter.IsJSON() {
		return formatter.Emit(result.Address, result)
	}
	if multisigShowScript || cfg.IsVerbose() {
		return formatter.EmitFields(output.NewFields().
			Add("address", result.Address).
			Add("policy", strconv.Itoa(result.Required)+"-of-"+strconv.Itoa(result.Total)).
			Add("redeem_script", result.RedeemScript).
			Add("disassembly", result.Disassembly))
	}
	return formatter.Emit(result.Address, result)
}
