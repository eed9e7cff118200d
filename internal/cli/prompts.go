package cli

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/mrz1836/addrgen/internal/addrcrypto"
	addrerr "github.com/mrz1836/addrgen/pkg/errors"
)

// Prompt functions are variables so tests can replace them.
//
//nolint:gochecknoglobals // Swapped in tests
var promptMnemonicFn = promptMnemonic

// promptMnemonic reads a seed phrase from the terminal without echoing it.
func promptMnemonic() (string, error) {
	fd := int(os.Stdin.Fd()) //nolint:gosec // file descriptors fit in int

	if !term.IsTerminal(fd) {
		return "", addrerr.WithSuggestion(
			addrerr.ErrInvalidInput,
			"no seed phrase given; pass --mnemonic or run from a terminal",
		)
	}

	out(os.Stderr, "Enter seed phrase (input hidden): ")
	raw, err := term.ReadPassword(fd)
	outln(os.Stderr) // newline after hidden input
	if err != nil {
		return "", fmt.Errorf("reading seed phrase: %w", err)
	}
	defer addrcrypto.Zero(raw)

	phrase := strings.TrimSpace(string(raw))
	if phrase == "" {
		return "", addrerr.WithSuggestion(addrerr.ErrInvalidInput, "no input provided")
	}
	return phrase, nil
}
