package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appauth "github.com/emrekoc/campushub/internal/app/auth"
	"github.com/emrekoc/campushub/internal/app/models"
	"github.com/emrekoc/campushub/internal/pkg/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(jwtExp time.Duration, op appauth.Operation) (*gin.Engine, *auth.JWTService) {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "middleware-test-secret",
		AccessTokenExp: jwtExp,
		TokenIssuer:    "campushub-test",
	})
	m := NewAuthMiddleware(jwtService)

	router := gin.New()
	group := router.Group("/", m.JWTAuth())
	group.GET("/protected", m.RequireOperation(op), func(c *gin.Context) {
		userID, _ := UserID(c)
		role, _ := Role(c)
		c.JSON(http.StatusOK, gin.H{"userID": userID, "role": role})
	})
	return router, jwtService
}

func tokenFor(t *testing.T, jwtService *auth.JWTService, role models.RoleType) string {
	t.Helper()
	token, _, err := jwtService.GenerateToken(&models.User{
		ID:    42,
		Email: "ada@campus.edu",
		Role:  role,
	})
	require.NoError(t, err)
	return token
}

func TestJWTAuthAcceptsValidBearerToken(t *testing.T) {
	router, jwtService := newTestRouter(time.Hour, appauth.OpCourseList)
	token := tokenFor(t, jwtService, models.RoleStudent)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"userID":42`)
}

func TestJWTAuthRejectsMissingHeader(t *testing.T) {
	router, _ := newTestRouter(time.Hour, appauth.OpCourseList)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// Tokens are read from the Authorization header only: a token smuggled in
// the query string must not authenticate the request.
func TestJWTAuthIgnoresQueryParameterToken(t *testing.T) {
	router, jwtService := newTestRouter(time.Hour, appauth.OpCourseList)
	token := tokenFor(t, jwtService, models.RoleStudent)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected?token="+token, nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthRejectsNonBearerScheme(t *testing.T) {
	router, jwtService := newTestRouter(time.Hour, appauth.OpCourseList)
	token := tokenFor(t, jwtService, models.RoleStudent)

	for _, header := range []string{token, "Basic " + token, "bearer " + token} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", header)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
	}
}

func TestJWTAuthRejectsExpiredToken(t *testing.T) {
	router, jwtService := newTestRouter(-time.Minute, appauth.OpCourseList)
	token := tokenFor(t, jwtService, models.RoleStudent)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "AUTH_005")
}

func TestJWTAuthRejectsTokenSignedElsewhere(t *testing.T) {
	router, _ := newTestRouter(time.Hour, appauth.OpCourseList)

	foreign := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "some-other-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "campushub-test",
	})
	token := tokenFor(t, foreign, models.RoleAdmin)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireOperationEnforcesRole(t *testing.T) {
	router, jwtService := newTestRouter(time.Hour, appauth.OpUserCreate)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, jwtService, models.RoleStudent))
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, jwtService, models.RoleAdmin))
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireOperationDeniesUnknownOperation(t *testing.T) {
	router, jwtService := newTestRouter(time.Hour, appauth.Operation("course.archive"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, jwtService, models.RoleAdmin))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
