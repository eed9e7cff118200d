// Package address provides the validation and derivation operations behind
// the CLI and HTTP API.
package address

import (
	"time"

	"github.com/btcsuite/btcd/chaincfg"

	"github.com/mrz1836/addrgen/internal/metrics"
	"github.com/mrz1836/addrgen/internal/validation"
	"github.com/mrz1836/addrgen/internal/wallet"
)

// Service provides address validation and derivation operations.
// It holds no per-call state and is safe for concurrent use.
type Service struct {
	net     *chaincfg.Params
	log     Logger
	metrics Recorder
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger. A nil logger discards output.
func WithLogger(l Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithMetrics sets where operation outcomes are recorded.
func WithMetrics(r Recorder) Option {
	return func(s *Service) {
		if r != nil {
			s.metrics = r
		}
	}
}

// WithNetwork overrides the address network. Only tests use anything but mainnet.
func WithNetwork(net *chaincfg.Params) Option {
	return func(s *Service) {
		if net != nil {
			s.net = net
		}
	}
}

// NewService creates a new address service instance.
func NewService(opts ...Option) *Service {
	s := &Service{
		net:     wallet.DefaultNetwork,
		log:     nopLogger{},
		metrics: metrics.Global,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Network returns the parameters addresses are encoded for.
func (s *Service) Network() *chaincfg.Params {
	return s.net
}

// ValidateMnemonic checks the word count of a seed phrase.
func (s *Service) ValidateMnemonic(phrase string) validation.Result {
	start := time.Now()
	result := wallet.ValidateMnemonic(phrase)
	s.metrics.RecordOperation(metrics.OpValidateMnemonic, time.Since(start), result.Err())
	return result
}

// ValidatePath checks the depth of a derivation path.
func (s *Service) ValidatePath(path string) validation.Result {
	start := time.Now()
	result := wallet.ValidatePath(path)
	s.metrics.RecordOperation(metrics.OpValidatePath, time.Since(start), result.Err())
	return result
}
