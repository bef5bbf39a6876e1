package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gameshelf-dev/gameshelf/db"
	"github.com/gameshelf-dev/gameshelf/internal/auth"
	"github.com/gameshelf-dev/gameshelf/internal/models"
	"github.com/gameshelf-dev/gameshelf/internal/router"
	"github.com/gameshelf-dev/gameshelf/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupServer wires the full router against a fresh in-memory database named
// after the test, so cases stay isolated from each other.
func setupServer(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	testDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	err = testDB.AutoMigrate(
		&models.User{},
		&models.Game{},
		&models.Genre{},
		&models.Backlog{},
		&models.CompleteGame{},
	)
	require.NoError(t, err)

	db.DB = testDB

	require.NoError(t, auth.InitJWT("test-secret", time.Hour))

	return router.NewRouter()
}

// doJSON performs a request with an optional JSON body and bearer token.
func doJSON(t *testing.T, r *gin.Engine, method string, path string, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader

	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func registerUser(t *testing.T, r *gin.Engine, username string, password string) types.UserResponse {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/users/register", "", gin.H{
		"username": username,
		"password": password,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var user types.UserResponse
	decode(t, w, &user)
	return user
}

func obtainToken(t *testing.T, r *gin.Engine, username string, password string) string {
	t.Helper()

	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	req, err := http.NewRequest(http.MethodPost, "/users/token", strings.NewReader(form.Encode()))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var token types.TokenResponse
	decode(t, w, &token)
	require.Equal(t, "bearer", token.TokenType)
	return token.AccessToken
}

// newAccount registers a user and returns a usable token.
func newAccount(t *testing.T, r *gin.Engine, username string) string {
	t.Helper()
	registerUser(t, r, username, "qwerty")
	return obtainToken(t, r, username, "qwerty")
}

func createGame(t *testing.T, r *gin.Engine, token string, title string) types.GameResponse {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/games", token, gin.H{
		"title":        title,
		"developer":    "Remedy",
		"publisher":    "505 Games",
		"release_date": "2019-08-27",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var game types.GameResponse
	decode(t, w, &game)
	return game
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func urlPath(format string, args ...interface{}) string {
	return fmt.Sprintf(format, args...)
}

func createGenre(t *testing.T, r *gin.Engine, token string, title string) types.GenreResponse {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/genres", token, gin.H{"title": title})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var genre types.GenreResponse
	decode(t, w, &genre)
	return genre
}
