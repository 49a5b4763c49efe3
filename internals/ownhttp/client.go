package ownhttp

import (
	"net"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// UserAgent is sent with every request
var UserAgent = "launchkit/dev (+https://github.com/minepkg/launchkit)"

// DefaultTimeout is used for connecting, the TLS handshake and waiting for response headers
const DefaultTimeout = 10 * time.Second

// Options configure the client returned by New
type Options struct {
	// Timeout applies to dialing, the TLS handshake and the response headers.
	// It does not limit the time it takes to read the body. Defaults to DefaultTimeout
	Timeout time.Duration
	// RequestsPerSecond limits outgoing requests. 0 means no limit
	RequestsPerSecond float64
}

// New returns a new http.Client with the AddHeaderTransport (setting the User-Agent header)
func New() *http.Client {
	return NewWithOptions(Options{})
}

// NewWithOptions returns a client that sets the User-Agent, honors the
// timeouts in opts and optionally throttles requests
func NewWithOptions(opts Options) *http.Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	base := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConnsPerHost:   16,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeout,
		ResponseHeaderTimeout: timeout,
		ExpectContinueTimeout: 1 * time.Second,
	}

	var transport http.RoundTripper = NewAddHeaderTransport(base)
	if opts.RequestsPerSecond > 0 {
		limiter := rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), 1)
		transport = NewThrottleTransport(transport, limiter)
	}

	return &http.Client{Transport: transport}
}

// AddHeaderTransport sets the User-Agent header on all requests
type AddHeaderTransport struct {
	T http.RoundTripper
}

// RoundTrip implements http.RoundTripper
func (adt *AddHeaderTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// requests must not be modified by a RoundTripper
	req = req.Clone(req.Context())
	req.Header.Set("User-Agent", UserAgent)
	return adt.T.RoundTrip(req)
}

// NewAddHeaderTransport wraps T (http.DefaultTransport if nil)
func NewAddHeaderTransport(T http.RoundTripper) *AddHeaderTransport {
	if T == nil {
		T = http.DefaultTransport
	}
	return &AddHeaderTransport{T}
}
