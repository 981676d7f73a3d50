package models

import "time"

// Experience is one entry of a profile's work history.
type Experience struct {
	Company     string     `json:"company"`
	Title       string     `json:"title"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	Description string     `json:"description,omitempty"`
}

// Profile is the single per-user profile record. File fields hold public
// URLs returned by the storage upload; content is never inspected.
type Profile struct {
	UserID       string       `json:"user_id"`
	FullName     string       `json:"full_name"`
	Headline     string       `json:"headline"`
	Location     string       `json:"location"`
	Bio          string       `json:"bio"`
	AvatarURL    *string      `json:"avatar_url"`
	CVURL        *string      `json:"cv_url"`
	PortfolioURL *string      `json:"portfolio_url"`
	Skills       []string     `json:"skills"`
	Experience   []Experience `json:"experience"`
	UpdatedAt    *time.Time   `json:"updated_at"`
}
