package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/PushMaster9000/COLLEGE-EVENT-MANAGEMENT-SYSTEM/internal/domain"
	"github.com/PushMaster9000/COLLEGE-EVENT-MANAGEMENT-SYSTEM/internal/repository"
)

var (
	ErrUserEmailExists      = repository.ErrUserEmailExists
	ErrOrganiserEmailExists = repository.ErrOrganiserEmailExists
	ErrUserNotFound         = repository.ErrUserNotFound
	ErrOrganiserNotFound    = repository.ErrOrganiserNotFound
	ErrWrongPassword        = errors.New("wrong password")
)

type AuthUserRepository interface {
	Create(ctx context.Context, user domain.User) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
}

type AuthOrganiserRepository interface {
	Create(ctx context.Context, organiser domain.Organiser) (domain.Organiser, error)
	FindByEmail(ctx context.Context, email string) (domain.Organiser, error)
}

type AuthService struct {
	users      AuthUserRepository
	organisers AuthOrganiserRepository
}

func NewAuthService(users AuthUserRepository, organisers AuthOrganiserRepository) *AuthService {
	return &AuthService{
		users:      users,
		organisers: organisers,
	}
}

// RegisterStudent stores a new student account with a hashed password.
// Email uniqueness is enforced by the users table constraint.
func (s *AuthService) RegisterStudent(ctx context.Context, user domain.User) (domain.User, error) {
	hashed, err := hashPassword(user.Password)
	if err != nil {
		return domain.User{}, err
	}
	user.Password = hashed
	user.Role = domain.RoleStudent

	created, err := s.users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, repository.ErrUserEmailExists) {
			return domain.User{}, ErrUserEmailExists
		}

		return domain.User{}, fmt.Errorf("s.users.Create -> %w", err)
	}

	return created, nil
}

func (s *AuthService) LoginStudent(ctx context.Context, email, password string) (domain.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domain.User{}, ErrUserNotFound
		}

		return domain.User{}, fmt.Errorf("s.users.FindByEmail -> %w", err)
	}

	if !verifyPassword(password, user.Password) {
		return domain.User{}, ErrWrongPassword
	}

	return user, nil
}

// RegisterOrganiser checks the email explicitly before inserting so the
// duplicate case reads as a clean conflict. The unique constraint still
// backstops a concurrent double-submit.
func (s *AuthService) RegisterOrganiser(ctx context.Context, organiser domain.Organiser) (domain.Organiser, error) {
	if err := s.checkOrganiserEmail(ctx, organiser.Email); err != nil {
		return domain.Organiser{}, err
	}

	hashed, err := hashPassword(organiser.Password)
	if err != nil {
		return domain.Organiser{}, err
	}
	organiser.Password = hashed

	created, err := s.organisers.Create(ctx, organiser)
	if err != nil {
		if errors.Is(err, repository.ErrOrganiserEmailExists) {
			return domain.Organiser{}, ErrOrganiserEmailExists
		}

		return domain.Organiser{}, fmt.Errorf("s.organisers.Create -> %w", err)
	}

	return created, nil
}

func (s *AuthService) LoginOrganiser(ctx context.Context, email, password string) (domain.Organiser, error) {
	organiser, err := s.organisers.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrOrganiserNotFound) {
			return domain.Organiser{}, ErrOrganiserNotFound
		}

		return domain.Organiser{}, fmt.Errorf("s.organisers.FindByEmail -> %w", err)
	}

	if !verifyPassword(password, organiser.Password) {
		return domain.Organiser{}, ErrWrongPassword
	}

	return organiser, nil
}

func (s *AuthService) checkOrganiserEmail(ctx context.Context, email string) error {
	_, err := s.organisers.FindByEmail(ctx, email)
	if err == nil {
		return ErrOrganiserEmailExists
	}
	if !errors.Is(err, repository.ErrOrganiserNotFound) {
		return err
	}

	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}

// verifyPassword returns false for any mismatch, including malformed or
// legacy placeholder digests.
func verifyPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
