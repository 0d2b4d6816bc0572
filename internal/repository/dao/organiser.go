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
	ErrOrganiserEmailExists = errors.New("Organiser with this email already exists")
	ErrOrganiserNotFound    = errors.New("organiser not found")
)

type Organiser struct {
	ID uint `gorm:"primaryKey"`

	Name       string `gorm:"not null"`
	Email      string `gorm:"unique;not null"`
	Password   string `gorm:"not null"`
	Department string `gorm:"not null"`
	Phone      string
	IsActive   bool `gorm:"not null;default:true"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type OrganiserDAO struct {
	db *gorm.DB
}

func NewOrganiserDAO(db *gorm.DB) *OrganiserDAO {
	return &OrganiserDAO{
		db: db,
	}
}

func (d *OrganiserDAO) Insert(ctx context.Context, organiser Organiser) (Organiser, error) {
	result := d.db.WithContext(ctx).Create(&organiser)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) && err.Code == pgerrcode.UniqueViolation {
			return Organiser{}, ErrOrganiserEmailExists
		}

		return Organiser{}, result.Error
	}

	return organiser, nil
}

func (d *OrganiserDAO) FindByID(ctx context.Context, id uint) (Organiser, error) {
	var organiser Organiser

	result := d.db.WithContext(ctx).First(&organiser, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Organiser{}, ErrOrganiserNotFound
		}

		return Organiser{}, result.Error
	}

	return organiser, nil
}

func (d *OrganiserDAO) FindByEmail(ctx context.Context, email string) (Organiser, error) {
	var organiser Organiser

	result := d.db.WithContext(ctx).First(&organiser, "email = ?", email)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Organiser{}, ErrOrganiserNotFound
		}

		return Organiser{}, result.Error
	}

	return organiser, nil
}
