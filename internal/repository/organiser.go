package repository

import (
	"context"
	"fmt"

	"github.com/PushMaster9000/COLLEGE-EVENT-MANAGEMENT-SYSTEM/internal/domain"
	"github.com/PushMaster9000/COLLEGE-EVENT-MANAGEMENT-SYSTEM/internal/repository/dao"
)

var (
	ErrOrganiserEmailExists = dao.ErrOrganiserEmailExists
	ErrOrganiserNotFound    = dao.ErrOrganiserNotFound
)

type OrganiserDAO interface {
	Insert(ctx context.Context, organiser dao.Organiser) (dao.Organiser, error)
	FindByID(ctx context.Context, id uint) (dao.Organiser, error)
	FindByEmail(ctx context.Context, email string) (dao.Organiser, error)
}

type OrganiserRepository struct {
	dao OrganiserDAO
}

func NewOrganiserRepository(dao OrganiserDAO) *OrganiserRepository {
	return &OrganiserRepository{
		dao: dao,
	}
}

func (r *OrganiserRepository) Create(ctx context.Context, organiser domain.Organiser) (domain.Organiser, error) {
	created, err := r.dao.Insert(ctx, dao.Organiser{
		Name:       organiser.Name,
		Email:      organiser.Email,
		Password:   organiser.Password,
		Department: organiser.Department,
		Phone:      organiser.Phone,
		IsActive:   true,
	})
	if err != nil {
		return domain.Organiser{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *OrganiserRepository) FindByEmail(ctx context.Context, email string) (domain.Organiser, error) {
	found, err := r.dao.FindByEmail(ctx, email)
	if err != nil {
		return domain.Organiser{}, fmt.Errorf("r.dao.FindByEmail -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *OrganiserRepository) daoToDomain(o dao.Organiser) domain.Organiser {
	return domain.Organiser{
		ID:         o.ID,
		Name:       o.Name,
		Email:      o.Email,
		Password:   o.Password,
		Department: o.Department,
		Phone:      o.Phone,
		IsActive:   o.IsActive,
		Role:       domain.RoleOrganiser,
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
}
