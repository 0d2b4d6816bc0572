package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/PushMaster9000/COLLEGE-EVENT-MANAGEMENT-SYSTEM/internal/domain"
	"github.com/PushMaster9000/COLLEGE-EVENT-MANAGEMENT-SYSTEM/internal/repository"
	"github.com/PushMaster9000/COLLEGE-EVENT-MANAGEMENT-SYSTEM/internal/service"
)

type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) Create(ctx context.Context, event domain.Event) (domain.Event, error) {
	args := m.Called(ctx, event)
	return args.Get(0).(domain.Event), args.Error(1)
}

func (m *MockEventRepository) ListAll(ctx context.Context) ([]domain.Event, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Event), args.Error(1)
}

func (m *MockEventRepository) ListByOrganiser(ctx context.Context, organiserID uint) ([]domain.Event, error) {
	args := m.Called(ctx, organiserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Event), args.Error(1)
}

func (m *MockEventRepository) UpdateOwned(ctx context.Context, event domain.Event, organiserID uint) error {
	args := m.Called(ctx, event, organiserID)
	return args.Error(0)
}

func (m *MockEventRepository) DeleteOwned(ctx context.Context, eventID, organiserID uint) error {
	args := m.Called(ctx, eventID, organiserID)
	return args.Error(0)
}

func TestEventService_CreateEvent_FixesOwnership(t *testing.T) {
	repo := new(MockEventRepository)
	svc := service.NewEventService(repo)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(e domain.Event) bool {
		return e.OrganiserID == 9
	})).Return(domain.Event{ID: 3, OrganiserID: 9}, nil)

	created, err := svc.CreateEvent(context.Background(), domain.Event{
		Title:    "Tech Fest",
		Date:     time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		Time:     "10:00",
		Location: "Main Hall",
		Capacity: 200,
		// A client-supplied owner must be ignored.
		OrganiserID: 1234,
	}, 9)

	require.NoError(t, err)
	assert.Equal(t, uint(9), created.OrganiserID)
	repo.AssertExpectations(t)
}

func TestEventService_UpdateEvent_NotOwned(t *testing.T) {
	repo := new(MockEventRepository)
	svc := service.NewEventService(repo)

	repo.On("UpdateOwned", mock.Anything, mock.Anything, uint(2)).
		Return(repository.ErrEventNotFound)

	err := svc.UpdateEvent(context.Background(), domain.Event{ID: 3}, 2)

	assert.ErrorIs(t, err, service.ErrEventNotFound)
}

func TestEventService_DeleteEvent_NotOwned(t *testing.T) {
	repo := new(MockEventRepository)
	svc := service.NewEventService(repo)

	repo.On("DeleteOwned", mock.Anything, uint(3), uint(2)).
		Return(repository.ErrEventNotFound)

	err := svc.DeleteEvent(context.Background(), 3, 2)

	assert.ErrorIs(t, err, service.ErrEventNotFound)
}

func TestEventService_DeleteEvent_Owned(t *testing.T) {
	repo := new(MockEventRepository)
	svc := service.NewEventService(repo)

	repo.On("DeleteOwned", mock.Anything, uint(3), uint(9)).Return(nil)

	err := svc.DeleteEvent(context.Background(), 3, 9)

	assert.NoError(t, err)
}
