// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// UserCredential is the stored credential record owned by the credential service.
// PasswordHash never leaves that service: it is excluded from JSON and from Identity.
type UserCredential struct {
	ID           uuid.UUID // Assigned at creation, immutable.
	Email        string    // Unique lookup key.
	Name         string
	IsAdmin      bool
	PasswordHash string `json:"-"` // bcrypt hash; encodes its own salt and cost.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Identity is the sanitized projection of a UserCredential.
type Identity struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
}

// Identity returns the record without its password hash.
func (c *UserCredential) Identity() *Identity {
	if c == nil {
		return nil
	}

	return &Identity{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		IsAdmin:   c.IsAdmin,
		CreatedAt: c.CreatedAt,
	}
}

// NormalizeEmail returns the canonical lookup form of an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
