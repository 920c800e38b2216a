// Package connectivity reports whether the remote service is reachable
// and raises transitions between the online and offline states.
package connectivity

import (
	"net/http"
	"time"
)

// Oracle reports the current connectivity status. Callers must poll it
// fresh on every decision; caching the answer risks acting on stale
// status.
type Oracle interface {
	IsOnline() bool
}

// HTTPProbe decides connectivity by probing the service endpoint with a
// short-timeout request.
type HTTPProbe struct {
	url        string
	httpClient *http.Client
}

// NewHTTPProbe creates a probe against the given endpoint.
func NewHTTPProbe(endpoint string) *HTTPProbe {
	return &HTTPProbe{
		url:        endpoint,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

// IsOnline reports whether the endpoint answered at all. Any HTTP
// status counts as reachable; only transport failures count as offline.
func (p *HTTPProbe) IsOnline() bool {
	resp, err := p.httpClient.Head(p.url)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return true
}

// OracleFunc adapts a plain function to the Oracle interface.
type OracleFunc func() bool

// IsOnline implements Oracle.
func (f OracleFunc) IsOnline() bool {
	return f()
}
