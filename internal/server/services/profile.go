package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/jobkeeper/internal/models"
	"github.com/dmitrijs2005/jobkeeper/internal/server/repositories/repomanager"
)

type ProfileService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewProfileService(db *sql.DB, m repomanager.RepositoryManager) *ProfileService {
	return &ProfileService{db: db, repomanager: m}
}

func (s *ProfileService) Get(ctx context.Context, userID string) (*models.Profile, error) {
	return s.repomanager.Profiles(s.db).Get(ctx, userID)
}

// Save stores p as userID's profile. A user_id inside p is ignored.
func (s *ProfileService) Save(ctx context.Context, userID string, p *models.Profile) (*models.Profile, error) {
	p.UserID = userID
	return s.repomanager.Profiles(s.db).Save(ctx, userID, p)
}
