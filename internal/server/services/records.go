package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/jobkeeper/internal/server/repositories/records"
	"github.com/dmitrijs2005/jobkeeper/internal/server/repositories/repomanager"
)

// RecordService exposes the four record collections. The userID always
// comes from the verified access token.
type RecordService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewRecordService(db *sql.DB, m repomanager.RepositoryManager) *RecordService {
	return &RecordService{db: db, repomanager: m}
}

func (s *RecordService) List(ctx context.Context, userID, collection string) ([]records.Row, error) {
	repo, err := s.repomanager.Records(s.db, collection)
	if err != nil {
		return nil, err
	}
	return repo.List(ctx, userID)
}

func (s *RecordService) Insert(ctx context.Context, userID, collection string, fields map[string]any) (records.Row, error) {
	repo, err := s.repomanager.Records(s.db, collection)
	if err != nil {
		return nil, err
	}
	return repo.Insert(ctx, userID, fields)
}

func (s *RecordService) Update(ctx context.Context, userID, collection, id string, fields map[string]any) (records.Row, error) {
	repo, err := s.repomanager.Records(s.db, collection)
	if err != nil {
		return nil, err
	}
	return repo.Update(ctx, userID, id, fields)
}

func (s *RecordService) Delete(ctx context.Context, userID, collection, id string) error {
	repo, err := s.repomanager.Records(s.db, collection)
	if err != nil {
		return err
	}
	return repo.Delete(ctx, userID, id)
}
