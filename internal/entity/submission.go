package entity

import (
	"time"

	"github.com/google/uuid"
)

// ContactSubmission represents a stored contact-form entry.
// Rows are append-only: id and created_at are assigned by the store
// at insertion time and never change afterwards.
type ContactSubmission struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       *string   `json:"phone,omitempty"`
	ProjectType string    `json:"projectType"`
	Budget      *string   `json:"budget,omitempty"`
	Message     string    `json:"message"`
	CreatedAt   time.Time `json:"createdAt"`
}
