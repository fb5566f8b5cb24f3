package client

import (
	"context"
	"encoding/json"

	"github.com/RitishHUB/polling-frountend/internal/client/models"
	"github.com/RitishHUB/polling-frountend/internal/client/repositories/storage"
	"github.com/RitishHUB/polling-frountend/internal/common"
)

// TokenSource yields the bearer token for an outbound request, or "" when
// there is no session.
type TokenSource interface {
	Token(ctx context.Context) string
}

// TokenFunc adapts a function to TokenSource.
type TokenFunc func(ctx context.Context) string

func (f TokenFunc) Token(ctx context.Context) string { return f(ctx) }

// storedToken reads the token from the persisted session at request time,
// so the header always reflects durable storage rather than a cached copy.
type storedToken struct {
	repo storage.Repository
}

// StoredSessionToken returns a TokenSource backed by durable storage.
// Unreadable or malformed entries count as no session.
func StoredSessionToken(repo storage.Repository) TokenSource {
	return &storedToken{repo: repo}
}

func (s *storedToken) Token(ctx context.Context) string {
	raw, err := s.repo.Get(ctx, common.SessionStorageKey)
	if err != nil || raw == nil {
		return ""
	}
	var sess models.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return ""
	}
	return sess.Token
}
