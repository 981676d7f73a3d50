// Package models holds server-only persistence types. Record types shared
// with the client live in internal/models.
package models

import "time"

type User struct {
	ID           string
	Email        string
	PasswordHash string
	Metadata     map[string]string
	CreatedAt    time.Time
}
