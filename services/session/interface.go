package session

import (
	"context"

	"tailortalk/models"
)

// Store keeps conversation sessions keyed by session id. Implementations are
// expected to return a fresh empty session for unknown ids rather than an
// error, mirroring create-on-first-message semantics.
type Store interface {
	Get(ctx context.Context, id string) (*models.Session, error)
	Put(ctx context.Context, sess *models.Session) error
	Clear(ctx context.Context, id string) error
}
