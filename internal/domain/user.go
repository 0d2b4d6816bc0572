package domain

import "time"

// Role is the closed set of account roles carried inside session tokens.
type Role string

const (
	RoleStudent   Role = "student"
	RoleOrganiser Role = "organiser"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleOrganiser:
		return true
	}

	return false
}

// User is a student account.
type User struct {
	ID         uint      `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Password   string    `json:"-"`
	Department string    `json:"department"`
	Year       int       `json:"year"`
	Role       Role      `json:"role"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
