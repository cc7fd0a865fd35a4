package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luct-faculty/portal/internal/app/models"
	"github.com/luct-faculty/portal/internal/app/models/dto"
	"github.com/luct-faculty/portal/internal/pkg/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newJWTService(exp time.Duration) *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "middleware-test-secret",
		TokenExp:    exp,
		TokenIssuer: "luct-portal-test",
	})
}

func protectedRouter(jwtService *auth.JWTService, allowed ...models.Role) *gin.Engine {
	m := NewAuthMiddleware(jwtService)

	router := gin.New()
	group := router.Group("/", m.JWTAuth())
	if len(allowed) > 0 {
		group.Use(m.RoleRequired(allowed...))
	}
	group.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userID": CurrentUserID(c)})
	})
	return router
}

func doRequest(router *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestJWTAuthMissingHeader(t *testing.T) {
	router := protectedRouter(newJWTService(time.Hour))

	w := doRequest(router, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), string(dto.ErrorCodeUnauthorized))
}

func TestJWTAuthInvalidToken(t *testing.T) {
	router := protectedRouter(newJWTService(time.Hour))

	w := doRequest(router, "not-a-real-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthExpiredToken(t *testing.T) {
	expired := newJWTService(-time.Minute)
	token, _, err := expired.GenerateToken(&models.User{ID: 7, Role: models.RoleStudent})
	require.NoError(t, err)

	router := protectedRouter(expired)
	w := doRequest(router, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), string(dto.ErrorCodeExpiredToken))
}

func TestJWTAuthValidTokenSetsIdentity(t *testing.T) {
	jwtService := newJWTService(time.Hour)
	token, _, err := jwtService.GenerateToken(&models.User{ID: 7, Name: "Thabo", Role: models.RoleStudent})
	require.NoError(t, err)

	router := protectedRouter(jwtService)
	w := doRequest(router, token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"userID":7`)
}

func TestRoleRequiredRejectsOtherRole(t *testing.T) {
	jwtService := newJWTService(time.Hour)
	token, _, err := jwtService.GenerateToken(&models.User{ID: 7, Role: models.RoleStudent})
	require.NoError(t, err)

	router := protectedRouter(jwtService, models.RolePL)
	w := doRequest(router, token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRoleRequiredAllowsListedRole(t *testing.T) {
	jwtService := newJWTService(time.Hour)
	token, _, err := jwtService.GenerateToken(&models.User{ID: 7, Role: models.RolePRL})
	require.NoError(t, err)

	router := protectedRouter(jwtService, models.RolePL, models.RolePRL)
	w := doRequest(router, token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCurrentUserIDWithoutAuth(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Equal(t, int64(0), CurrentUserID(c))
}
