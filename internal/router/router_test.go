package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"agrimatch/internal/auth"
	"agrimatch/internal/config"
	"agrimatch/internal/handler"
	"agrimatch/internal/model"
	"agrimatch/internal/repository"
	"agrimatch/internal/sample"
	"agrimatch/internal/service"
)

const testJWTSecret = "router-test-secret"

// newTestServer wires the full stack against an in-memory database so
// requests travel through the real middleware chain, JWT guard included.
func newTestServer(t *testing.T) (*echo.Echo, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Farmland{}, &model.Favorite{}))

	userRepo := repository.NewUserRepository(db)
	farmlandRepo := repository.NewFarmlandRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)

	jwtService := auth.NewJWTService(testJWTSecret)
	authService := service.NewAuthService(userRepo, jwtService, auth.NewTokenStore(nil))
	userService := service.NewUserService(userRepo, nil)
	farmlandService := service.NewFarmlandService(farmlandRepo, userRepo, sample.New())
	favoriteService := service.NewFavoriteService(favoriteRepo, farmlandRepo)

	e := echo.New()
	Register(
		e,
		&config.Config{JWTSecret: testJWTSecret},
		handler.NewAuthHandler(authService),
		handler.NewUserHandler(userService),
		handler.NewFarmlandHandler(farmlandService),
		handler.NewFavoriteHandler(favoriteService),
		handler.NewSeedHandler(farmlandService),
	)
	return e, db
}

func createUser(t *testing.T, db *gorm.DB, email string, role model.Role) model.User {
	t.Helper()
	user := model.User{Email: email, PasswordHash: "x", Role: role}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func bearerToken(t *testing.T, user model.User) string {
	t.Helper()
	token, err := auth.NewJWTService(testJWTSecret).GenerateAccessToken(user.ID, user.Email, string(user.Role))
	require.NoError(t, err)
	return "Bearer " + token
}

func TestSecuredRoutes_AcceptBearerToken(t *testing.T) {
	e, db := newTestServer(t)
	seeker := createUser(t, db, "seeker@example.com", model.RoleSeeker)

	req := httptest.NewRequest(http.MethodGet, "/api/favorites", nil)
	req.Header.Set(echo.HeaderAuthorization, bearerToken(t, seeker))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"data":[],"total":0}`, rec.Body.String())
}

func TestSecuredRoutes_RejectMissingOrBadToken(t *testing.T) {
	e, _ := newTestServer(t)

	t.Run("missing token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/favorites", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/favorites", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer not-a-jwt")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestSecuredRoutes_FarmlandCreateRoundTrip(t *testing.T) {
	e, db := newTestServer(t)
	provider := createUser(t, db, "owner@example.com", model.RoleProvider)

	body := `{"prefecture":"長野県","city":"松本市","address":"梓川1-1","area":1200,"availableFrom":"2025-04-01"}`
	req := httptest.NewRequest(http.MethodPost, "/api/farmland", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, bearerToken(t, provider))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	// The new listing is immediately visible through the public search.
	req = httptest.NewRequest(http.MethodGet, "/api/farmland", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":1`)
	assert.Contains(t, rec.Body.String(), "owner@example.com")
}

func TestSecuredRoutes_SeekerCannotCreateFarmland(t *testing.T) {
	e, db := newTestServer(t)
	seeker := createUser(t, db, "seeker@example.com", model.RoleSeeker)

	body := `{"prefecture":"長野県","city":"松本市","address":"梓川1-1","area":1200,"availableFrom":"2025-04-01"}`
	req := httptest.NewRequest(http.MethodPost, "/api/farmland", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, bearerToken(t, seeker))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code, rec.Body.String())
}
