// Package refreshtokens declares the server-side repository contract for
// issuing, looking up and revoking refresh tokens.
package refreshtokens

import (
	"context"
	"time"

	"github.com/dmitrijs2005/jobkeeper/internal/server/models"
)

type Repository interface {
	// Create stores token for userID, expiring at now+validity.
	Create(ctx context.Context, userID string, token string, validity time.Duration) error

	// Find returns the token row or common.ErrNotFound.
	Find(ctx context.Context, token string) (*models.RefreshToken, error)

	// Delete revokes a single token owned by userID. Missing tokens are not an error.
	Delete(ctx context.Context, userID string, token string) error

	// DeleteExpired purges tokens whose expiry is before now and returns how many went.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
