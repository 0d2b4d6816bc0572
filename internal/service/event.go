package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/PushMaster9000/COLLEGE-EVENT-MANAGEMENT-SYSTEM/internal/domain"
	"github.com/PushMaster9000/COLLEGE-EVENT-MANAGEMENT-SYSTEM/internal/repository"
)

var ErrEventNotFound = repository.ErrEventNotFound

type EventRepository interface {
	Create(ctx context.Context, event domain.Event) (domain.Event, error)
	ListAll(ctx context.Context) ([]domain.Event, error)
	ListByOrganiser(ctx context.Context, organiserID uint) ([]domain.Event, error)
	UpdateOwned(ctx context.Context, event domain.Event, organiserID uint) error
	DeleteOwned(ctx context.Context, eventID, organiserID uint) error
}

type EventService struct {
	repo EventRepository
}

func NewEventService(repo EventRepository) *EventService {
	return &EventService{
		repo: repo,
	}
}

func (s *EventService) ListEvents(ctx context.Context) ([]domain.Event, error) {
	events, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListAll -> %w", err)
	}

	return events, nil
}

func (s *EventService) ListOrganiserEvents(ctx context.Context, organiserID uint) ([]domain.Event, error) {
	events, err := s.repo.ListByOrganiser(ctx, organiserID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListByOrganiser -> %w", err)
	}

	return events, nil
}

// CreateEvent fixes ownership to the authenticated organiser. There is no
// transfer-of-ownership operation.
func (s *EventService) CreateEvent(ctx context.Context, event domain.Event, organiserID uint) (domain.Event, error) {
	event.OrganiserID = organiserID

	created, err := s.repo.Create(ctx, event)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *EventService) UpdateEvent(ctx context.Context, event domain.Event, organiserID uint) error {
	if err := s.repo.UpdateOwned(ctx, event, organiserID); err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return ErrEventNotFound
		}

		return fmt.Errorf("s.repo.UpdateOwned -> %w", err)
	}

	return nil
}

func (s *EventService) DeleteEvent(ctx context.Context, eventID, organiserID uint) error {
	if err := s.repo.DeleteOwned(ctx, eventID, organiserID); err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return ErrEventNotFound
		}

		return fmt.Errorf("s.repo.DeleteOwned -> %w", err)
	}

	return nil
}
