package models

import (
	"strings"
	"time"
)

type Contact struct {
	ID              string     `json:"id"`
	UserID          string     `json:"user_id"`
	Name            string     `json:"name"`
	Email           *string    `json:"email"`
	Phone           *string    `json:"phone"`
	Company         *string    `json:"company"`
	Position        *string    `json:"position"`
	Notes           *string    `json:"notes"`
	LinkedInURL     *string    `json:"linkedin_url"`
	LastContactDate *time.Time `json:"last_contact_date"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at"`
}

func (c Contact) Key() string { return c.ID }

func (c Contact) Clone() Contact {
	c.Email = clonePtr(c.Email)
	c.Phone = clonePtr(c.Phone)
	c.Company = clonePtr(c.Company)
	c.Position = clonePtr(c.Position)
	c.Notes = clonePtr(c.Notes)
	c.LinkedInURL = clonePtr(c.LinkedInURL)
	c.LastContactDate = clonePtr(c.LastContactDate)
	c.UpdatedAt = clonePtr(c.UpdatedAt)
	return c
}

// ContactLess orders by name, case-insensitively.
func ContactLess(a, b Contact) bool {
	return strings.ToLower(a.Name) < strings.ToLower(b.Name)
}
