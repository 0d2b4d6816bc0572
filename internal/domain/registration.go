package domain

import "time"

const RegistrationStatusConfirmed = "confirmed"

// Registration links a student to an event. At most one registration may
// exist per (student, event) pair.
type Registration struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	EventID   uint      `json:"event_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
