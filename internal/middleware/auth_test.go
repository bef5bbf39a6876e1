package middleware_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gameshelf-dev/gameshelf/db"
	"github.com/gameshelf-dev/gameshelf/internal/auth"
	"github.com/gameshelf-dev/gameshelf/internal/middleware"
	"github.com/gameshelf-dev/gameshelf/internal/models"
	"github.com/gameshelf-dev/gameshelf/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupAuthTest(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	testDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, testDB.AutoMigrate(&models.User{}))

	db.DB = testDB

	require.NoError(t, auth.InitJWT("test-secret", time.Hour))

	r := gin.New()
	r.GET("/protected", middleware.AuthMiddleware(), func(ctx *gin.Context) {
		user, err := utils.GetCurrentUser(ctx)
		require.NoError(t, err)
		ctx.JSON(http.StatusOK, gin.H{"username": user.Username})
	})

	return r
}

func request(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareMissingToken(t *testing.T) {
	r := setupAuthTest(t)

	w := request(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Authorization token is required")
}

func TestAuthMiddlewareBadFormat(t *testing.T) {
	r := setupAuthTest(t)

	w := request(r, "Token abcdef")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Bearer")
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	r := setupAuthTest(t)

	w := request(r, "Bearer qwerty")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Could not validate credentials")
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	r := setupAuthTest(t)

	user := models.User{Username: "test_user", PasswordHash: "irrelevant"}
	require.NoError(t, db.DB.Create(&user).Error)

	token, err := auth.GenerateJWT("test_user")
	require.NoError(t, err)

	w := request(r, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "test_user")
}

func TestAuthMiddlewareSubjectGone(t *testing.T) {
	r := setupAuthTest(t)

	user := models.User{Username: "test_user", PasswordHash: "irrelevant"}
	require.NoError(t, db.DB.Create(&user).Error)

	token, err := auth.GenerateJWT("test_user")
	require.NoError(t, err)

	require.NoError(t, db.DB.Delete(&user).Error)

	w := request(r, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Could not validate credentials")
}

func TestAuthMiddlewareExpiredToken(t *testing.T) {
	r := setupAuthTest(t)

	user := models.User{Username: "test_user", PasswordHash: "irrelevant"}
	require.NoError(t, db.DB.Create(&user).Error)

	require.NoError(t, auth.InitJWT("test-secret", -time.Minute))
	token, err := auth.GenerateJWT("test_user")
	require.NoError(t, err)
	require.NoError(t, auth.InitJWT("test-secret", time.Hour))

	w := request(r, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Could not validate credentials")
}
