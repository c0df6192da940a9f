package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestLogHTTPHooks(t *testing.T) {
	var buf bytes.Buffer
	h := newLogHTTPHooks(newLogger(&buf, log.DebugLevel))
	ctx := context.Background()

	h.OnRequest(ctx, "GET", "api.example", "/rest/bodies/")
	h.OnResponse(ctx, "GET", "api.example", "/rest/bodies/", 200, 150*time.Millisecond)
	h.OnError(ctx, "GET", "api.example", "/rest/bodies/", errors.New("connection refused"))

	out := buf.String()
	for _, want := range []string{"http request", "http response", "status=200", "http error", "connection refused"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output should contain %q, got:\n%s", want, out)
		}
	}
}

func TestLogHTTPHooksQuietAtInfo(t *testing.T) {
	var buf bytes.Buffer
	h := newLogHTTPHooks(newLogger(&buf, log.InfoLevel))
	h.OnRequest(context.Background(), "GET", "api.example", "/rest/bodies/")

	if buf.Len() != 0 {
		t.Errorf("hooks should log at debug level only, got %q", buf.String())
	}
}
