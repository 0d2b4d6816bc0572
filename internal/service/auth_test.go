package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/PushMaster9000/COLLEGE-EVENT-MANAGEMENT-SYSTEM/internal/domain"
	"github.com/PushMaster9000/COLLEGE-EVENT-MANAGEMENT-SYSTEM/internal/repository"
	"github.com/PushMaster9000/COLLEGE-EVENT-MANAGEMENT-SYSTEM/internal/service"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.User), args.Error(1)
}

type MockOrganiserRepository struct {
	mock.Mock
}

func (m *MockOrganiserRepository) Create(ctx context.Context, organiser domain.Organiser) (domain.Organiser, error) {
	args := m.Called(ctx, organiser)
	return args.Get(0).(domain.Organiser), args.Error(1)
}

func (m *MockOrganiserRepository) FindByEmail(ctx context.Context, email string) (domain.Organiser, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.Organiser), args.Error(1)
}

func mustHash(t *testing.T, password string) string {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)

	return string(hash)
}

func TestAuthService_RegisterStudent_HashesPassword(t *testing.T) {
	users := new(MockUserRepository)
	organisers := new(MockOrganiserRepository)
	svc := service.NewAuthService(users, organisers)

	var stored domain.User
	users.On("Create", mock.Anything, mock.MatchedBy(func(u domain.User) bool {
		stored = u
		return u.Email == "new@college.edu" && u.Role == domain.RoleStudent
	})).Return(domain.User{ID: 1, Email: "new@college.edu", Role: domain.RoleStudent}, nil)

	created, err := svc.RegisterStudent(context.Background(), domain.User{
		Name:     "New Student",
		Email:    "new@college.edu",
		Password: "pw123",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(1), created.ID)
	assert.NotEqual(t, "pw123", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("pw123")))
	users.AssertExpectations(t)
}

func TestAuthService_RegisterStudent_DuplicateEmail(t *testing.T) {
	users := new(MockUserRepository)
	organisers := new(MockOrganiserRepository)
	svc := service.NewAuthService(users, organisers)

	users.On("Create", mock.Anything, mock.Anything).
		Return(domain.User{}, repository.ErrUserEmailExists)

	_, err := svc.RegisterStudent(context.Background(), domain.User{
		Email:    "taken@college.edu",
		Password: "pw123",
	})

	assert.ErrorIs(t, err, service.ErrUserEmailExists)
}

func TestAuthService_LoginStudent(t *testing.T) {
	hash := mustHash(t, "pw123")

	tests := []struct {
		name     string
		password string
		stored   domain.User
		findErr  error
		wantErr  error
	}{
		{
			name:     "success",
			password: "pw123",
			stored:   domain.User{ID: 1, Email: "s@college.edu", Password: hash, Role: domain.RoleStudent},
		},
		{
			name:     "wrong password",
			password: "wrong",
			stored:   domain.User{ID: 1, Email: "s@college.edu", Password: hash},
			wantErr:  service.ErrWrongPassword,
		},
		{
			name:     "legacy placeholder digest",
			password: "pw123",
			stored:   domain.User{ID: 1, Email: "s@college.edu", Password: "$2b$10$examplehashedpassword"},
			wantErr:  service.ErrWrongPassword,
		},
		{
			name:     "unknown email",
			password: "pw123",
			findErr:  repository.ErrUserNotFound,
			wantErr:  service.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(MockUserRepository)
			organisers := new(MockOrganiserRepository)
			svc := service.NewAuthService(users, organisers)

			users.On("FindByEmail", mock.Anything, "s@college.edu").
				Return(tt.stored, tt.findErr)

			user, err := svc.LoginStudent(context.Background(), "s@college.edu", tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.RoleStudent, user.Role)
		})
	}
}

func TestAuthService_RegisterOrganiser_DuplicateEmail(t *testing.T) {
	users := new(MockUserRepository)
	organisers := new(MockOrganiserRepository)
	svc := service.NewAuthService(users, organisers)

	organisers.On("FindByEmail", mock.Anything, "x@c.edu").
		Return(domain.Organiser{ID: 5, Email: "x@c.edu"}, nil)

	_, err := svc.RegisterOrganiser(context.Background(), domain.Organiser{
		Name:       "Prof X",
		Email:      "x@c.edu",
		Password:   "pw123",
		Department: "CS",
	})

	assert.ErrorIs(t, err, service.ErrOrganiserEmailExists)
	assert.EqualError(t, err, "Organiser with this email already exists")
	organisers.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthService_RegisterOrganiser_Success(t *testing.T) {
	users := new(MockUserRepository)
	organisers := new(MockOrganiserRepository)
	svc := service.NewAuthService(users, organisers)

	organisers.On("FindByEmail", mock.Anything, "x@c.edu").
		Return(domain.Organiser{}, repository.ErrOrganiserNotFound)
	organisers.On("Create", mock.Anything, mock.MatchedBy(func(o domain.Organiser) bool {
		return o.Email == "x@c.edu" && o.Password != "pw123"
	})).Return(domain.Organiser{ID: 5, Email: "x@c.edu", Role: domain.RoleOrganiser}, nil)

	created, err := svc.RegisterOrganiser(context.Background(), domain.Organiser{
		Name:       "Prof X",
		Email:      "x@c.edu",
		Password:   "pw123",
		Department: "CS",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.RoleOrganiser, created.Role)
	organisers.AssertExpectations(t)
}

func TestAuthService_LoginOrganiser_WrongPassword(t *testing.T) {
	users := new(MockUserRepository)
	organisers := new(MockOrganiserRepository)
	svc := service.NewAuthService(users, organisers)

	organisers.On("FindByEmail", mock.Anything, "x@c.edu").
		Return(domain.Organiser{ID: 5, Email: "x@c.edu", Password: mustHash(t, "pw123")}, nil)

	_, err := svc.LoginOrganiser(context.Background(), "x@c.edu", "nope")

	assert.ErrorIs(t, err, service.ErrWrongPassword)
}
