package repository

import (
	"context"
	"fmt"

	"github.com/PushMaster9000/COLLEGE-EVENT-MANAGEMENT-SYSTEM/internal/domain"
	"github.com/PushMaster9000/COLLEGE-EVENT-MANAGEMENT-SYSTEM/internal/repository/dao"
)

var ErrEventNotFound = dao.ErrEventNotFound

type EventDAO interface {
	Insert(ctx context.Context, event dao.Event) (dao.Event, error)
	ListAll(ctx context.Context) ([]dao.EventWithOrganiser, error)
	ListByOrganiser(ctx context.Context, organiserID uint) ([]dao.EventWithCounts, error)
	UpdateOwned(ctx context.Context, event dao.Event, organiserID uint) error
	DeleteOwned(ctx context.Context, eventID, organiserID uint) error
}

type EventRepository struct {
	dao EventDAO
}

func NewEventRepository(dao EventDAO) *EventRepository {
	return &EventRepository{
		dao: dao,
	}
}

func (r *EventRepository) Create(ctx context.Context, event domain.Event) (domain.Event, error) {
	created, err := r.dao.Insert(ctx, r.domainToDAO(event))
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *EventRepository) ListAll(ctx context.Context) ([]domain.Event, error) {
	rows, err := r.dao.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListAll -> %w", err)
	}

	events := make([]domain.Event, 0, len(rows))
	for _, row := range rows {
		event := r.daoToDomain(row.Event)
		event.OrganiserName = row.OrganiserName
		events = append(events, event)
	}

	return events, nil
}

func (r *EventRepository) ListByOrganiser(ctx context.Context, organiserID uint) ([]domain.Event, error) {
	rows, err := r.dao.ListByOrganiser(ctx, organiserID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListByOrganiser -> %w", err)
	}

	events := make([]domain.Event, 0, len(rows))
	for _, row := range rows {
		event := r.daoToDomain(row.Event)
		event.RegistrationCount = row.RegistrationCount
		event.ConfirmedRegistrations = row.ConfirmedRegistrations
		events = append(events, event)
	}

	return events, nil
}

// UpdateOwned propagates the owner scope down to a single UPDATE statement.
func (r *EventRepository) UpdateOwned(ctx context.Context, event domain.Event, organiserID uint) error {
	if err := r.dao.UpdateOwned(ctx, r.domainToDAO(event), organiserID); err != nil {
		return fmt.Errorf("r.dao.UpdateOwned -> %w", err)
	}

	return nil
}

func (r *EventRepository) DeleteOwned(ctx context.Context, eventID, organiserID uint) error {
	if err := r.dao.DeleteOwned(ctx, eventID, organiserID); err != nil {
		return fmt.Errorf("r.dao.DeleteOwned -> %w", err)
	}

	return nil
}

func (r *EventRepository) domainToDAO(e domain.Event) dao.Event {
	return dao.Event{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Date:        e.Date,
		Time:        e.Time,
		Location:    e.Location,
		Category:    e.Category,
		Capacity:    e.Capacity,
		OrganiserID: e.OrganiserID,
	}
}

func (r *EventRepository) daoToDomain(e dao.Event) domain.Event {
	return domain.Event{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Date:        e.Date,
		Time:        e.Time,
		Location:    e.Location,
		Category:    e.Category,
		Capacity:    e.Capacity,
		OrganiserID: e.OrganiserID,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
