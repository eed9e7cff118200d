package address

// SegwitAddress is a derived native segwit address with the key it encodes.
type SegwitAddress struct {
	Address   string `json:"address"`
	Path      string `json:"path"`
	PublicKey string `json:"public_key"`
}

// MultisigAddress is a derived P2SH address with the redeem script it commits to.
type MultisigAddress struct {
	Address      string `json:"address"`
	Required     int    `json:"n"`
	Total        int    `json:"m"`
	RedeemScript string `json:"redeem_script"`
	Disassembly  string `json:"disassembly"`
}
