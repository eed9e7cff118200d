package api

// segwitRequest is the JSON body of /hd_segwit_address. seed_phase is the
// field name older clients send.
type segwitRequest struct {
	SeedPhrase string `json:"seed_phrase"`
	SeedPhase  string `json:"seed_phase"`
	Path       string `json:"path"`
}

func (r segwitRequest) phrase() string {
	if r.SeedPhrase != "" {
		return r.SeedPhrase
	}
	return r.SeedPhase
}

// p2shRequest is the JSON body of /p2sh_address.
type p2shRequest struct {
	N          int      `json:"n"`
	M          int      `json:"m"`
	PublicKeys []string `json:"public_keys"`
}
