package v1_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "github.com/PushMaster9000/COLLEGE-EVENT-MANAGEMENT-SYSTEM/internal/api/handler/v1"
	"github.com/PushMaster9000/COLLEGE-EVENT-MANAGEMENT-SYSTEM/internal/config"
	"github.com/PushMaster9000/COLLEGE-EVENT-MANAGEMENT-SYSTEM/internal/domain"
	"github.com/PushMaster9000/COLLEGE-EVENT-MANAGEMENT-SYSTEM/internal/pkg/jwthelper"
	"github.com/PushMaster9000/COLLEGE-EVENT-MANAGEMENT-SYSTEM/internal/service"
)

const signingKey = "test-signing-key"

type stubAuthService struct {
	registerStudent   func(ctx context.Context, user domain.User) (domain.User, error)
	loginStudent      func(ctx context.Context, email, password string) (domain.User, error)
	registerOrganiser func(ctx context.Context, organiser domain.Organiser) (domain.Organiser, error)
	loginOrganiser    func(ctx context.Context, email, password string) (domain.Organiser, error)
}

func (s *stubAuthService) RegisterStudent(ctx context.Context, user domain.User) (domain.User, error) {
	return s.registerStudent(ctx, user)
}

func (s *stubAuthService) LoginStudent(ctx context.Context, email, password string) (domain.User, error) {
	return s.loginStudent(ctx, email, password)
}

func (s *stubAuthService) RegisterOrganiser(ctx context.Context, organiser domain.Organiser) (domain.Organiser, error) {
	return s.registerOrganiser(ctx, organiser)
}

func (s *stubAuthService) LoginOrganiser(ctx context.Context, email, password string) (domain.Organiser, error) {
	return s.loginOrganiser(ctx, email, password)
}

func buildAuthRouter(svc v1.AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := v1.NewAuthHandler(&config.APIConfig{JWTSigningKey: signingKey}, svc)

	router := gin.New()
	router.POST("/api/register", handler.HandleRegisterStudent)
	router.POST("/api/login", handler.HandleLoginStudent)
	router.POST("/api/organiser/register", handler.HandleRegisterOrganiser)
	router.POST("/api/organiser/login", handler.HandleLoginOrganiser)

	return router
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	return w
}

func TestHandleRegisterOrganiser_TokenRoleRoundTrip(t *testing.T) {
	svc := &stubAuthService{
		registerOrganiser: func(_ context.Context, organiser domain.Organiser) (domain.Organiser, error) {
			organiser.ID = 7
			organiser.Role = domain.RoleOrganiser
			return organiser, nil
		},
	}
	router := buildAuthRouter(svc)

	w := postJSON(router, "/api/organiser/register",
		`{"name":"Prof X","email":"x@c.edu","password":"pw123","department":"CS"}`)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
	}
	require.NoError(t, unmarshalBody(w, &resp))
	assert.True(t, resp.Success)

	claims, err := jwthelper.ParseToken([]byte(signingKey), resp.Token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, domain.RoleOrganiser, claims.Role)
}

func TestHandleRegisterOrganiser_DuplicateEmail(t *testing.T) {
	svc := &stubAuthService{
		registerOrganiser: func(_ context.Context, _ domain.Organiser) (domain.Organiser, error) {
			return domain.Organiser{}, service.ErrOrganiserEmailExists
		},
	}
	router := buildAuthRouter(svc)

	w := postJSON(router, "/api/organiser/register",
		`{"name":"Prof X","email":"x@c.edu","password":"pw123","department":"CS"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Organiser with this email already exists")
}

func TestHandleRegisterOrganiser_MissingFields(t *testing.T) {
	router := buildAuthRouter(&stubAuthService{})

	w := postJSON(router, "/api/organiser/register", `{"email":"x@c.edu"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleLoginOrganiser_WrongCredentials(t *testing.T) {
	svc := &stubAuthService{
		loginOrganiser: func(_ context.Context, _, _ string) (domain.Organiser, error) {
			return domain.Organiser{}, service.ErrWrongPassword
		},
	}
	router := buildAuthRouter(svc)

	w := postJSON(router, "/api/organiser/login", `{"email":"x@c.edu","password":"bad"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid email or password")
}

func TestHandleRegisterStudent_TokenRoleRoundTrip(t *testing.T) {
	svc := &stubAuthService{
		registerStudent: func(_ context.Context, user domain.User) (domain.User, error) {
			user.ID = 11
			user.Role = domain.RoleStudent
			return user, nil
		},
	}
	router := buildAuthRouter(svc)

	w := postJSON(router, "/api/register",
		`{"name":"A Student","email":"a@x.com","password":"pw123","department":"CS","year":2}`)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, unmarshalBody(w, &resp))

	claims, err := jwthelper.ParseToken([]byte(signingKey), resp.Token)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleStudent, claims.Role)
}

func TestHandleLoginStudent_UnknownEmail(t *testing.T) {
	svc := &stubAuthService{
		loginStudent: func(_ context.Context, _, _ string) (domain.User, error) {
			return domain.User{}, service.ErrUserNotFound
		},
	}
	router := buildAuthRouter(svc)

	w := postJSON(router, "/api/login", `{"email":"nobody@x.com","password":"pw123"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
