package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// ErrEventNotFound covers both a missing event and an event owned by
// someone else. The two cases are deliberately indistinguishable.
var ErrEventNotFound = errors.New("event not found or access denied")

type Event struct {
	ID uint `gorm:"primaryKey"`

	Title       string    `gorm:"not null"`
	Description string
	Date        time.Time `gorm:"not null;index"`
	Time        string    `gorm:"not null"`
	Location    string    `gorm:"not null"`
	Category    string
	Capacity    int       `gorm:"not null"`

	OrganiserID uint      `gorm:"not null;index"`
	Organiser   Organiser `gorm:"foreignKey:OrganiserID"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// EventWithOrganiser is the public listing row.
type EventWithOrganiser struct {
	Event
	OrganiserName string
}

// EventWithCounts is the organiser dashboard row.
type EventWithCounts struct {
	Event
	RegistrationCount      int64
	ConfirmedRegistrations int64
}

type EventDAO struct {
	db *gorm.DB
}

func NewEventDAO(db *gorm.DB) *EventDAO {
	return &EventDAO{
		db: db,
	}
}

func (d *EventDAO) Insert(ctx context.Context, event Event) (Event, error) {
	result := d.db.WithContext(ctx).Create(&event)
	if result.Error != nil {
		return Event{}, result.Error
	}

	return event, nil
}

func (d *EventDAO) ListAll(ctx context.Context) ([]EventWithOrganiser, error) {
	var events []EventWithOrganiser

	result := d.db.WithContext(ctx).
		Model(&Event{}).
		Select("events.*, organisers.name AS organiser_name").
		Joins("LEFT JOIN organisers ON organisers.id = events.organiser_id").
		Order("events.date").
		Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}

	return events, nil
}

func (d *EventDAO) ListByOrganiser(ctx context.Context, organiserID uint) ([]EventWithCounts, error) {
	var events []EventWithCounts

	result := d.db.WithContext(ctx).
		Model(&Event{}).
		Select(`events.*,
			COUNT(registrations.id) AS registration_count,
			COUNT(registrations.id) FILTER (WHERE registrations.status = 'confirmed') AS confirmed_registrations`).
		Joins("LEFT JOIN registrations ON registrations.event_id = events.id").
		Where("events.organiser_id = ?", organiserID).
		Group("events.id").
		Order("events.date").
		Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}

	return events, nil
}

// UpdateOwned mutates the event in a single statement scoped to its owner.
// Zero affected rows means the event does not exist or belongs to another
// organiser.
func (d *EventDAO) UpdateOwned(ctx context.Context, event Event, organiserID uint) error {
	result := d.db.WithContext(ctx).
		Model(&Event{}).
		Where("id = ? AND organiser_id = ?", event.ID, organiserID).
		Updates(map[string]interface{}{
			"title":       event.Title,
			"description": event.Description,
			"date":        event.Date,
			"time":        event.Time,
			"location":    event.Location,
			"category":    event.Category,
			"capacity":    event.Capacity,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrEventNotFound
	}

	return nil
}

// DeleteOwned removes the event in a single owner-scoped statement.
// Registrations go with it through the ON DELETE CASCADE constraint.
func (d *EventDAO) DeleteOwned(ctx context.Context, eventID, organiserID uint) error {
	result := d.db.WithContext(ctx).
		Where("id = ? AND organiser_id = ?", eventID, organiserID).
		Delete(&Event{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrEventNotFound
	}

	return nil
}
