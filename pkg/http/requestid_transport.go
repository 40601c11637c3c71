package http

import (
	"net/http"

	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

type requestIDTransport struct {
	transport http.RoundTripper
}

func (t *requestIDTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	reqCopy := req.Clone(req.Context())

	if reqCopy.Header.Get(requestIDHeader) == "" {
		reqCopy.Header.Set(requestIDHeader, uuid.NewString())
	}

	return t.transport.RoundTrip(reqCopy)
}

// WithRequestID stamps every outgoing request with a fresh X-Request-ID
// unless the caller already set one, so client and server logs can be
// correlated.
func WithRequestID() HttpOpts {
	return WithTransport(func(rt http.RoundTripper) http.RoundTripper {
		return &requestIDTransport{
			transport: rt,
		}
	})
}
