package domain

import "time"

// Organiser is an event-organiser account. Organisers live in their own
// table and never overlap with student accounts.
type Organiser struct {
	ID         uint      `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Password   string    `json:"-"`
	Department string    `json:"department"`
	Phone      string    `json:"phone"`
	IsActive   bool      `json:"is_active"`
	Role       Role      `json:"role"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
