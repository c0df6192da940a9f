package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/solarsys/pkg/observability"
)

// logHTTPHooks logs API traffic at debug level.
type logHTTPHooks struct {
	logger *log.Logger
}

var _ observability.HTTPHooks = logHTTPHooks{}

func newLogHTTPHooks(l *log.Logger) logHTTPHooks {
	return logHTTPHooks{logger: l}
}

func (h logHTTPHooks) OnRequest(_ context.Context, method, host, path string) {
	h.logger.Debug("http request", "method", method, "host", host, "path", path)
}

func (h logHTTPHooks) OnResponse(_ context.Context, method, host, path string, status int, d time.Duration) {
	h.logger.Debug("http response", "method", method, "host", host, "path", path,
		"status", status, "duration", d.Round(time.Millisecond))
}

func (h logHTTPHooks) OnError(_ context.Context, method, host, path string, err error) {
	h.logger.Debug("http error", "method", method, "host", host, "path", path, "err", err)
}
