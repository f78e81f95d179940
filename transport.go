package wbs

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/stfnandersen/go-wbs/logging"
)

// DefaultHost is the production WBS API endpoint.
const DefaultHost = "wbsapi.withings.net"

// DefaultTimeout bounds a single round trip. The original service exposes no
// timeout at all; this is a safe extension, overridable via WithTimeout or
// WithHTTPClient.
const DefaultTimeout = 10 * time.Second

// Transport issues single GET round trips against the WBS API and validates
// the response envelope. It is safe for concurrent use as long as the
// underlying http.Client is.
type Transport struct {
	host   string
	scheme string
	hc     *http.Client
	log    logging.Logger
}

// TransportOption configures a Transport.
type TransportOption func(*Transport)

// WithHost overrides the API host (host or host:port).
func WithHost(host string) TransportOption {
	return func(t *Transport) { t.host = host }
}

// WithScheme overrides the URL scheme. The historical endpoint is plain
// "http"; set "https" if the deployment supports it.
func WithScheme(scheme string) TransportOption {
	return func(t *Transport) { t.scheme = scheme }
}

// WithHTTPClient replaces the underlying HTTP client entirely.
func WithHTTPClient(hc *http.Client) TransportOption {
	return func(t *Transport) { t.hc = hc }
}

// WithTimeout sets the per-request timeout on the underlying HTTP client.
func WithTimeout(d time.Duration) TransportOption {
	return func(t *Transport) { t.hc.Timeout = d }
}

// WithLogger attaches a structured logger. Calls are logged at Debug level,
// failures at Warn.
func WithLogger(l logging.Logger) TransportOption {
	return func(t *Transport) { t.log = l }
}

// NewTransport builds a Transport pointed at the production host with a
// default timeout and a no-op logger.
func NewTransport(opts ...TransportOption) *Transport {
	t := &Transport{
		host:   DefaultHost,
		scheme: "http",
		hc:     &http.Client{Timeout: DefaultTimeout},
		log:    logging.NewNop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Call performs one GET request to <scheme>://<host>/<service>?action=<action>
// with the given parameters URL-encoded, and validates the WBS envelope:
//
//   - anything that is not a JSON object wraps ErrTransport,
//   - a missing or non-numeric "status" wraps ErrProtocol,
//   - a non-zero status becomes a *RemoteError,
//   - on status 0 the raw "body" member is returned (nil when absent).
//
// Call never retries; a single failure surfaces immediately.
func (t *Transport) Call(ctx context.Context, service, action string, params url.Values) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("action", action)
	for key, values := range params {
		for _, v := range values {
			q.Add(key, v)
		}
	}

	u := url.URL{
		Scheme:   t.scheme,
		Host:     t.host,
		Path:     "/" + service,
		RawQuery: q.Encode(),
	}

	reqID := uuid.NewString()
	t.log.Debug(ctx, "calling wbs api", "request_id", reqID, "service", service, "action", action)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: building request: %v", ErrTransport, err)
	}

	resp, err := t.hc.Do(req)
	if err != nil {
		t.log.Warn(ctx, "wbs api call failed", "request_id", reqID, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", ErrTransport, err)
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("%w: response is not a JSON object", ErrTransport)
	}

	rawStatus, ok := envelope["status"]
	if !ok {
		return nil, fmt.Errorf("%w: no status in response", ErrProtocol)
	}
	var status int
	if err := json.Unmarshal(rawStatus, &status); err != nil {
		return nil, fmt.Errorf("%w: status is not a number", ErrProtocol)
	}

	if status != 0 {
		remoteErr := newRemoteError(service, status)
		t.log.Warn(ctx, "wbs api returned error status",
			"request_id", reqID, "service", service, "status", status, "message", remoteErr.Message)
		return nil, remoteErr
	}

	t.log.Debug(ctx, "wbs api call ok", "request_id", reqID, "service", service, "action", action)
	return envelope["body"], nil
}
