package profiles

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/jobkeeper/internal/dbx"
	"github.com/dmitrijs2005/jobkeeper/internal/models"
)

const columns = `user_id, full_name, headline, location, bio, avatar_url, cv_url, portfolio_url, skills, experience, updated_at`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Get(ctx context.Context, userID string) (*models.Profile, error) {
	query := `SELECT ` + columns + ` FROM profiles WHERE user_id = $1`

	p, err := scanProfile(r.db.QueryRowContext(ctx, query, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &models.Profile{UserID: userID, Skills: []string{}, Experience: []models.Experience{}}, nil
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}

func (r *PostgresRepository) Save(ctx context.Context, userID string, p *models.Profile) (*models.Profile, error) {
	skills := p.Skills
	if skills == nil {
		skills = []string{}
	}
	experience := p.Experience
	if experience == nil {
		experience = []models.Experience{}
	}
	skillsJSON, err := json.Marshal(skills)
	if err != nil {
		return nil, fmt.Errorf("marshal skills: %w", err)
	}
	experienceJSON, err := json.Marshal(experience)
	if err != nil {
		return nil, fmt.Errorf("marshal experience: %w", err)
	}

	query := `
		INSERT INTO profiles (user_id, full_name, headline, location, bio, avatar_url, cv_url, portfolio_url, skills, experience)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (user_id) DO UPDATE SET
			full_name = EXCLUDED.full_name,
			headline = EXCLUDED.headline,
			location = EXCLUDED.location,
			bio = EXCLUDED.bio,
			avatar_url = EXCLUDED.avatar_url,
			cv_url = EXCLUDED.cv_url,
			portfolio_url = EXCLUDED.portfolio_url,
			skills = EXCLUDED.skills,
			experience = EXCLUDED.experience,
			updated_at = now()
		RETURNING ` + columns

	saved, err := scanProfile(r.db.QueryRowContext(ctx, query,
		userID, p.FullName, p.Headline, p.Location, p.Bio,
		p.AvatarURL, p.CVURL, p.PortfolioURL, string(skillsJSON), string(experienceJSON)))
	if err != nil {
		return nil, dbx.WriteError(err)
	}
	return saved, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProfile(s scanner) (*models.Profile, error) {
	var (
		p                     models.Profile
		avatar, cv, portfolio sql.NullString
		skills, experience    []byte
		updated               sql.NullTime
	)
	err := s.Scan(&p.UserID, &p.FullName, &p.Headline, &p.Location, &p.Bio,
		&avatar, &cv, &portfolio, &skills, &experience, &updated)
	if err != nil {
		return nil, err
	}

	if avatar.Valid {
		p.AvatarURL = &avatar.String
	}
	if cv.Valid {
		p.CVURL = &cv.String
	}
	if portfolio.Valid {
		p.PortfolioURL = &portfolio.String
	}
	if updated.Valid {
		t := updated.Time.UTC()
		p.UpdatedAt = &t
	}
	if err := json.Unmarshal(skills, &p.Skills); err != nil {
		return nil, fmt.Errorf("decode skills: %w", err)
	}
	if err := json.Unmarshal(experience, &p.Experience); err != nil {
		return nil, fmt.Errorf("decode experience: %w", err)
	}
	return &p, nil
}
