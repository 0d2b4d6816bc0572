package domain

import "time"

// Event is owned by exactly one organiser, fixed at creation.
type Event struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Time        string    `json:"time"`
	Location    string    `json:"location"`
	Category    string    `json:"category"`
	Capacity    int       `json:"capacity"`
	OrganiserID uint      `json:"organiser_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// OrganiserName is populated by the public listing only.
	OrganiserName string `json:"organiser_name,omitempty"`

	// Registration counters are populated by the organiser listing only.
	RegistrationCount      int64 `json:"registration_count"`
	ConfirmedRegistrations int64 `json:"confirmed_registrations"`
}
