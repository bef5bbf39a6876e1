package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gameshelf-dev/gameshelf/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createBacklog(t *testing.T, r *gin.Engine, token string) types.CollectionResponse {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/backlogs", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var backlog types.CollectionResponse
	decode(t, w, &backlog)
	return backlog
}

func TestCreateBacklog(t *testing.T) {
	r := setupServer(t)
	token := newAccount(t, r, "test_user")

	backlog := createBacklog(t, r, token)
	assert.Equal(t, uint(1), backlog.UserID)
	assert.Empty(t, backlog.Games)
}

func TestCreateBacklogTwice(t *testing.T) {
	r := setupServer(t)
	token := newAccount(t, r, "test_user")

	createBacklog(t, r, token)

	w := doJSON(t, r, http.MethodPost, "/backlogs", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "User already has a backlog")
}

func TestDeleteBacklogThenRecreate(t *testing.T) {
	r := setupServer(t)
	token := newAccount(t, r, "test_user")

	createBacklog(t, r, token)

	w := doJSON(t, r, http.MethodDelete, "/backlogs", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Backlog has been deleted successfully")

	// A second delete has nothing to remove.
	w = doJSON(t, r, http.MethodDelete, "/backlogs", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "User has no backlog")

	createBacklog(t, r, token)
}

func TestGetBacklogNotFound(t *testing.T) {
	r := setupServer(t)
	token := newAccount(t, r, "test_user")

	w := doJSON(t, r, http.MethodGet, "/backlogs/42", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Backlog not found")
}

func TestListBacklogs(t *testing.T) {
	r := setupServer(t)
	firstToken := newAccount(t, r, "first_user")
	secondToken := newAccount(t, r, "second_user")

	createBacklog(t, r, firstToken)
	createBacklog(t, r, secondToken)

	w := doJSON(t, r, http.MethodGet, "/backlogs", firstToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var backlogs []types.CollectionResponse
	decode(t, w, &backlogs)
	assert.Len(t, backlogs, 2)
}

func TestAddGameToBacklog(t *testing.T) {
	r := setupServer(t)
	token := newAccount(t, r, "test_user")

	game := createGame(t, r, token, "Control")
	createBacklog(t, r, token)

	w := doJSON(t, r, http.MethodPut, urlPath("/backlogs?game_id=%d", game.ID), token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var backlog types.CollectionResponse
	decode(t, w, &backlog)
	require.Len(t, backlog.Games, 1)
	assert.Equal(t, "Control", backlog.Games[0].Title)

	// The same game cannot be listed twice.
	w = doJSON(t, r, http.MethodPut, urlPath("/backlogs?game_id=%d", game.ID), token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "already been added to the backlog")
}

func TestAddGameToBacklogWithoutBacklog(t *testing.T) {
	r := setupServer(t)
	token := newAccount(t, r, "test_user")

	game := createGame(t, r, token, "Control")

	w := doJSON(t, r, http.MethodPut, urlPath("/backlogs?game_id=%d", game.ID), token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "User has no backlog")
}

func TestAddUnknownGameToBacklog(t *testing.T) {
	r := setupServer(t)
	token := newAccount(t, r, "test_user")

	createBacklog(t, r, token)

	w := doJSON(t, r, http.MethodPut, "/backlogs?game_id=999", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Game not found")
}

func TestRemoveGameFromBacklog(t *testing.T) {
	r := setupServer(t)
	token := newAccount(t, r, "test_user")

	game := createGame(t, r, token, "Control")
	createBacklog(t, r, token)

	// Removing a game that was never added is an error.
	w := doJSON(t, r, http.MethodPut, urlPath("/backlogs/remove_game?game_id=%d", game.ID), token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "This game is not in the backlog")

	w = doJSON(t, r, http.MethodPut, urlPath("/backlogs?game_id=%d", game.ID), token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPut, urlPath("/backlogs/remove_game?game_id=%d", game.ID), token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var backlog types.CollectionResponse
	decode(t, w, &backlog)
	assert.Empty(t, backlog.Games)

	// Removal frees the pair for a later re-add.
	w = doJSON(t, r, http.MethodPut, urlPath("/backlogs?game_id=%d", game.ID), token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

// The same game can sit in both of a user's collections at once.
func TestGameInBacklogAndCompleteGames(t *testing.T) {
	r := setupServer(t)
	token := newAccount(t, r, "test_user")

	game := createGame(t, r, token, "Control")
	createBacklog(t, r, token)
	createCompleteGameList(t, r, token)

	w := doJSON(t, r, http.MethodPut, urlPath("/backlogs?game_id=%d", game.ID), token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPut, urlPath("/complete_games?game_id=%d", game.ID), token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var completeGames types.CollectionResponse
	decode(t, w, &completeGames)
	assert.Len(t, completeGames.Games, 1)
}
