// Package postgrest implements the store ports against a hosted PostgREST
// endpoint through the instrumented httpclient.
package postgrest

import (
	"log/slog"

	"github.com/jsamuelsen11/agency-site-api/internal/platform/config"
	"github.com/jsamuelsen11/agency-site-api/internal/platform/httpclient"
	"github.com/jsamuelsen11/agency-site-api/internal/platform/telemetry"
)

// ServiceName identifies the backend in traces, metrics and health checks.
const ServiceName = "postgrest"

// NewClient builds the httpclient used by the driver with the project's
// credentials and schema profile headers attached to every request.
func NewClient(
	clientCfg *config.ClientConfig,
	storeCfg *config.PostgRESTConfig,
	metrics *telemetry.Metrics,
	logger *slog.Logger,
) *httpclient.Client {
	opts := []httpclient.Option{
		httpclient.WithHeader("apikey", storeCfg.APIKey),
		httpclient.WithHeader("Authorization", "Bearer "+storeCfg.APIKey),
	}
	if storeCfg.Schema != "" {
		opts = append(opts,
			httpclient.WithHeader("Accept-Profile", storeCfg.Schema),
			httpclient.WithHeader("Content-Profile", storeCfg.Schema),
		)
	}
	return httpclient.New(clientCfg, ServiceName, metrics, logger, opts...)
}
