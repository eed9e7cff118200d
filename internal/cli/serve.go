package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/mrz1836/addrgen/internal/api"
	"github.com/mrz1836/addrgen/internal/metrics"
)

// shutdownGrace is how long in-flight requests may take after a signal.
const shutdownGrace = 10 * time.Second

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level flag variables
var (
	serveListen    string
	serveNoMetrics bool
)

// serveCmd runs the HTTP API.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `Serve address generation over HTTP until interrupted.

Routes:
  GET  /                                          index
  GET  /healthcheck                               liveness check
  GET  /hd_segwit_address/{seed_phrase}/{path}    segwit address
  GET|POST /hd_segwit_address                     segwit address, JSON body
  GET  /p2sh_address/{n}/{m}/{public_keys}        P2SH multisig address
  GET|POST /p2sh_address                          P2SH multisig address, JSON body
  GET  /metrics                                   Prometheus metrics

Successful requests return the bare address as text/plain. Requests are
rate limited per client address when server.rate_limit is set.`,
	Example: `  addrgen serve
  addrgen serve --listen 127.0.0.1:8080
  ADDRGEN_RATE_LIMIT=5:10 addrgen serve --no-metrics`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for command registration
func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.GroupID = groupServer

	serveCmd.Flags().StringVar(&serveListen, "listen", "", "listen address (default from server.listen, :5000)")
	serveCmd.Flags().BoolVar(&serveNoMetrics, "no-metrics", false, "do not serve /metrics")
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return serve(ctx)
}

// serve runs the API until ctx is canceled.
func serve(ctx context.Context) error {
	serverCfg := cfg.Server
	if serveListen != "" {
		serverCfg.Listen = serveListen
	}

	handler := api.NewRouter(newService(), api.RouterOptions{
		Logger:        logger,
		Metrics:       metrics.Global,
		RateLimit:     serverCfg.RateLimit,
		ExposeMetrics: serverCfg.Metrics && !serveNoMetrics,
	})

	logger.Info("starting api server: listen=%s rate_limit=%s", serverCfg.Listen, formatRateLimit(serverCfg.RateLimit))
	err := api.NewServer(serverCfg, handler, logger).Run(ctx, shutdownGrace)
	logMetricsSummary(metrics.Global)
	return err
}

// logMetricsSummary records the process totals when the server exits.
func logMetricsSummary(m *metrics.Metrics) {
	snap := m.Snapshot()
	logger.Info("api server stopped: requests=%d operations=%d errors=%d derivations=%d failures=%d latency_avg_ms=%.3f",
		snap.HTTPRequestsTotal, snap.OperationsTotal, snap.OperationErrors,
		snap.DerivationsTotal, snap.DerivationFailures, m.LatencyAvgMs())
}
