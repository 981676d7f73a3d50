// Package profiles stores the single profile row each user owns.
package profiles

import (
	"context"

	"github.com/dmitrijs2005/jobkeeper/internal/models"
)

type Repository interface {
	// Get returns the user's profile, or an empty one if none was saved yet.
	Get(ctx context.Context, userID string) (*models.Profile, error)
	// Save upserts p for userID and returns the stored row.
	Save(ctx context.Context, userID string, p *models.Profile) (*models.Profile, error)
}
