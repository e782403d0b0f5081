package api

import (
	"log/slog"
	"net/http"
)

// logTransport traces every round trip at debug level.
type logTransport struct {
	base http.RoundTripper
	log  *slog.Logger
}

func (t *logTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		t.log.Debug("request failed", "method", req.Method, "host", req.URL.Host, "path", req.URL.Path, "error", err)
		return nil, err
	}
	t.log.Debug("request", "method", req.Method, "host", req.URL.Host, "path", req.URL.Path, "status", resp.Status)
	return resp, nil
}
