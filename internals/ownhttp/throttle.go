package ownhttp

import (
	"net/http"

	"golang.org/x/time/rate"
)

// ThrottleTransport waits for the limiter before every request. The remote
// asset host is known to time out when hammered with thousands of requests.
type ThrottleTransport struct {
	T       http.RoundTripper
	limiter *rate.Limiter
}

// RoundTrip implements http.RoundTripper
func (tt *ThrottleTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := tt.limiter.Wait(req.Context()); err != nil {
		return nil, err
	}

	return tt.T.RoundTrip(req)
}

// NewThrottleTransport wraps T (http.DefaultTransport if nil)
func NewThrottleTransport(T http.RoundTripper, limiter *rate.Limiter) *ThrottleTransport {
	if T == nil {
		T = http.DefaultTransport
	}
	return &ThrottleTransport{T, limiter}
}
