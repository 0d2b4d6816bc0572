package dao

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrAlreadyRegistered    = errors.New("Already registered for this event")
	ErrRegistrationNotFound = errors.New("registration not found")
)

type Registration struct {
	ID uint `gorm:"primaryKey"`

	UserID  uint `gorm:"not null;uniqueIndex:idx_registrations_user_event"`
	EventID uint `gorm:"not null;uniqueIndex:idx_registrations_user_event"`

	User  User  `gorm:"foreignKey:UserID"`
	Event Event `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`

	Status string `gorm:"not null"`

	CreatedAt time.Time `gorm:"not null"`
}

type RegistrationDAO struct {
	db *gorm.DB
}

func NewRegistrationDAO(db *gorm.DB) *RegistrationDAO {
	return &RegistrationDAO{
		db: db,
	}
}

// Insert relies on the (user_id, event_id) unique index to close the
// check-then-insert race between concurrent submissions.
func (d *RegistrationDAO) Insert(ctx context.Context, registration Registration) (Registration, error) {
	result := d.db.WithContext(ctx).Create(&registration)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) && err.Code == pgerrcode.UniqueViolation {
			return Registration{}, ErrAlreadyRegistered
		}

		return Registration{}, result.Error
	}

	return registration, nil
}

func (d *RegistrationDAO) FindByUserAndEvent(ctx context.Context, userID, eventID uint) (Registration, error) {
	var registration Registration

	result := d.db.WithContext(ctx).First(&registration, "user_id = ? AND event_id = ?", userID, eventID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Registration{}, ErrRegistrationNotFound
		}

		return Registration{}, result.Error
	}

	return registration, nil
}
