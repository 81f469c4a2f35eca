package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/depscan/pkg/api"
	"github.com/matzehuels/depscan/pkg/cache"
	"github.com/matzehuels/depscan/pkg/observability"
)

// apiKeyPrefix separates API cache entries from CLI ones in a shared cache.
const apiKeyPrefix = "api:"

// serveCommand runs the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the extraction HTTP API",
		Long: `Serve the extraction HTTP API.

Endpoints:
  POST /v1/extract    extract a manifest sent as {"path": ..., "content": ...}
  GET  /v1/managers   list managers
  GET  /v1/stats      request and extraction counters
  GET  /healthz       liveness probe`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}

			keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), apiKeyPrefix)
			runner, err := c.newRunner(ctx, cfg, keyer, false)
			if err != nil {
				return err
			}
			defer runner.Close()

			counters := observability.NewCounters()
			counters.Register()
			defer observability.Reset()

			srv := api.New(runner, loggerFromContext(ctx)).WithCounters(counters)
			return srv.ListenAndServe(ctx, cfg.Server.Addr, cfg.Server.ReadTimeout.Duration, cfg.Server.WriteTimeout.Duration)
		},
	}
	cmd.Flags().StringVarP(&addr, "addr", "a", "", "listen address (overrides server.addr)")
	return cmd
}
