package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PushMaster9000/COLLEGE-EVENT-MANAGEMENT-SYSTEM/internal/api/middleware"
	"github.com/PushMaster9000/COLLEGE-EVENT-MANAGEMENT-SYSTEM/internal/domain"
	"github.com/PushMaster9000/COLLEGE-EVENT-MANAGEMENT-SYSTEM/internal/pkg/jwthelper"
)

const signingKey = "test-signing-key"

func buildRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	auth := middleware.NewAuthenticator(signingKey)

	router := gin.New()
	router.GET("/any", auth.VerifyJWT(), func(ctx *gin.Context) {
		claims, ok := middleware.GetClaims(ctx)
		require.True(t, ok)
		ctx.JSON(http.StatusOK, gin.H{"user_id": claims.UserID, "role": claims.Role})
	})
	router.GET("/organiser", auth.VerifyJWT(), auth.RequireOrganiser(), func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"ok": true})
	})

	return router
}

func issueToken(t *testing.T, role domain.Role) string {
	t.Helper()

	token, err := jwthelper.GenerateToken([]byte(signingKey), 1, "someone@college.edu", role)
	require.NoError(t, err)

	return token
}

func TestVerifyJWT_MissingToken(t *testing.T) {
	router := buildRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/any", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Access token required")
}

func TestVerifyJWT_MalformedHeader(t *testing.T) {
	router := buildRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/any", nil)
	req.Header.Set("Authorization", "Token abc")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestVerifyJWT_InvalidToken(t *testing.T) {
	router := buildRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/any", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid or expired token")
}

func TestVerifyJWT_ValidToken(t *testing.T) {
	router := buildRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/any", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, domain.RoleStudent))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":1`)
}

func TestRequireOrganiser_StudentToken(t *testing.T) {
	router := buildRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/organiser", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, domain.RoleStudent))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "organiser role required")
}

func TestRequireOrganiser_OrganiserToken(t *testing.T) {
	router := buildRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/organiser", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, domain.RoleOrganiser))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
