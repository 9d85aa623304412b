package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/majority/internal/api"
	"github.com/dmitrymomot/majority/pkg/clientip"
	"github.com/dmitrymomot/majority/pkg/httpserver"
	"github.com/dmitrymomot/majority/pkg/logger"
	"github.com/dmitrymomot/majority/pkg/ratelimiter"
	"github.com/dmitrymomot/majority/pkg/requestid"
)

func newServeCmd(cfg Config, logs *logSettings) *cobra.Command {
	httpCfg := cfg.HTTP
	rateCfg := cfg.RateLimit
	validate := cfg.Validate
	maxBody := cfg.MaxBodyBytes
	trustProxy := cfg.TrustProxy

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the majority vote over HTTP",
		Long: `serve starts an HTTP server exposing

  POST /v1/majority  {"items": [...], "validate": true, "fold": false, "normalize": false}
  GET  /health

It stops gracefully on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			log, err := logs.build(cmd.ErrOrStderr(), logger.WithContextExtractors(
				requestid.LoggerExtractor(),
				clientip.LoggerExtractor(),
			))
			if err != nil {
				return err
			}

			opts := []api.Option{
				api.WithMaxBodyBytes(maxBody),
				api.WithDefaultValidation(validate),
				api.WithTrustProxy(trustProxy),
			}
			if rateCfg.Enabled() {
				store := ratelimiter.NewMemoryStore()
				defer store.Close()
				limiter, err := ratelimiter.NewBucket(store, rateCfg)
				if err != nil {
					return err
				}
				opts = append(opts, api.WithRateLimiter(limiter))
			}

			srv := httpserver.NewFromConfig(httpCfg, httpserver.WithLogger(log))
			return srv.Run(ctx, api.NewRouter(log, opts...))
		},
	}

	f := cmd.Flags()
	f.StringVar(&httpCfg.Addr, "addr", httpCfg.Addr, "listen address")
	f.BoolVar(&validate, "validate", validate, "validate requests that omit \"validate\"")
	f.Int64Var(&maxBody, "max-body-bytes", maxBody, "maximum request body size")
	f.BoolVar(&trustProxy, "trust-proxy", trustProxy, "resolve client addresses from proxy headers")
	f.IntVar(&rateCfg.Capacity, "rate-limit", rateCfg.Capacity, "requests a client may burst to /v1/majority (0 disables limiting)")
	f.IntVar(&rateCfg.RefillRate, "rate-limit-refill", rateCfg.RefillRate, "tokens returned to each client per refill interval")
	f.DurationVar(&rateCfg.RefillInterval, "rate-limit-interval", rateCfg.RefillInterval, "rate limit refill interval")
	return cmd
}
