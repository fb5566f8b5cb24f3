package client

import (
	"net/http"

	"github.com/RitishHUB/polling-frountend/internal/common"
	"github.com/google/uuid"
)

// bearerTransport decorates every request with the session's bearer token
// and a fresh request id. Requests are otherwise passed through unchanged.
type bearerTransport struct {
	base   http.RoundTripper
	tokens TokenSource
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// RoundTrippers must not modify the caller's request.
	r := req.Clone(req.Context())

	if t.tokens != nil {
		if tok := t.tokens.Token(r.Context()); tok != "" {
			r.Header.Set(common.AuthorizationHeader, "Bearer "+tok)
		}
	}
	if r.Header.Get(common.RequestIDHeader) == "" {
		r.Header.Set(common.RequestIDHeader, uuid.NewString())
	}

	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(r)
}
