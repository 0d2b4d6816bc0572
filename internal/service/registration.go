package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/PushMaster9000/COLLEGE-EVENT-MANAGEMENT-SYSTEM/internal/domain"
	"github.com/PushMaster9000/COLLEGE-EVENT-MANAGEMENT-SYSTEM/internal/repository"
)

var (
	ErrAlreadyRegistered = repository.ErrAlreadyRegistered
	ErrOnlyStudents      = errors.New("only students can register for events")
)

type RegistrationRepository interface {
	Create(ctx context.Context, registration domain.Registration) (domain.Registration, error)
	FindByUserAndEvent(ctx context.Context, userID, eventID uint) (domain.Registration, error)
}

type RegistrationService struct {
	repo RegistrationRepository
}

func NewRegistrationService(repo RegistrationRepository) *RegistrationService {
	return &RegistrationService{
		repo: repo,
	}
}

// Register runs the precondition chain: student role, no existing
// registration, then the insert. The existence check keeps the common
// duplicate a cheap 400; the unique index catches the concurrent case.
func (s *RegistrationService) Register(ctx context.Context, userID uint, role domain.Role, eventID uint) (domain.Registration, error) {
	if role != domain.RoleStudent {
		return domain.Registration{}, ErrOnlyStudents
	}

	_, err := s.repo.FindByUserAndEvent(ctx, userID, eventID)
	if err == nil {
		return domain.Registration{}, ErrAlreadyRegistered
	}
	if !errors.Is(err, repository.ErrRegistrationNotFound) {
		return domain.Registration{}, fmt.Errorf("s.repo.FindByUserAndEvent -> %w", err)
	}

	created, err := s.repo.Create(ctx, domain.Registration{
		UserID:  userID,
		EventID: eventID,
		Status:  domain.RegistrationStatusConfirmed,
	})
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyRegistered) {
			return domain.Registration{}, ErrAlreadyRegistered
		}

		return domain.Registration{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}
