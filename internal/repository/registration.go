package repository

import (
	"context"
	"fmt"

	"github.com/PushMaster9000/COLLEGE-EVENT-MANAGEMENT-SYSTEM/internal/domain"
	"github.com/PushMaster9000/COLLEGE-EVENT-MANAGEMENT-SYSTEM/internal/repository/dao"
)

var (
	ErrAlreadyRegistered    = dao.ErrAlreadyRegistered
	ErrRegistrationNotFound = dao.ErrRegistrationNotFound
)

type RegistrationDAO interface {
	Insert(ctx context.Context, registration dao.Registration) (dao.Registration, error)
	FindByUserAndEvent(ctx context.Context, userID, eventID uint) (dao.Registration, error)
}

type RegistrationRepository struct {
	dao RegistrationDAO
}

func NewRegistrationRepository(dao RegistrationDAO) *RegistrationRepository {
	return &RegistrationRepository{
		dao: dao,
	}
}

func (r *RegistrationRepository) Create(ctx context.Context, registration domain.Registration) (domain.Registration, error) {
	created, err := r.dao.Insert(ctx, dao.Registration{
		UserID:  registration.UserID,
		EventID: registration.EventID,
		Status:  registration.Status,
	})
	if err != nil {
		return domain.Registration{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *RegistrationRepository) FindByUserAndEvent(ctx context.Context, userID, eventID uint) (domain.Registration, error) {
	found, err := r.dao.FindByUserAndEvent(ctx, userID, eventID)
	if err != nil {
		return domain.Registration{}, fmt.Errorf("r.dao.FindByUserAndEvent -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *RegistrationRepository) daoToDomain(reg dao.Registration) domain.Registration {
	return domain.Registration{
		ID:        reg.ID,
		UserID:    reg.UserID,
		EventID:   reg.EventID,
		Status:    reg.Status,
		CreatedAt: reg.CreatedAt,
	}
}
