package observability

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "GET", "api.le-systeme-solaire.net", "/rest/bodies/")
	h.OnResponse(ctx, "GET", "api.le-systeme-solaire.net", "/rest/bodies/", 200, time.Second)
	h.OnError(ctx, "GET", "api.le-systeme-solaire.net", "/rest/bodies/mars", errors.New("connection refused"))
	h.OnError(ctx, "GET", "api.le-systeme-solaire.net", "/rest/bodies/mars", nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}

	customHTTP := &testHTTPHooks{}
	SetHTTPHooks(customHTTP)
	if HTTP() != customHTTP {
		t.Error("SetHTTPHooks should set custom hooks")
	}

	Reset()
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("Reset() should restore NoopHTTPHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testHTTPHooks{}
	SetHTTPHooks(custom)

	// Setting nil should be ignored
	SetHTTPHooks(nil)

	if HTTP() != custom {
		t.Error("SetHTTPHooks(nil) should be ignored")
	}

	Reset()
}

type testHTTPHooks struct{ NoopHTTPHooks }
