package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gameshelf-dev/gameshelf/db"
	"github.com/gameshelf-dev/gameshelf/internal/models"
	"github.com/gameshelf-dev/gameshelf/internal/store"
	"github.com/gameshelf-dev/gameshelf/internal/types"
	"github.com/gameshelf-dev/gameshelf/internal/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CreateGameRequest struct {
	Title       string `json:"title" binding:"required"`
	Developer   string `json:"developer" binding:"required"`
	Publisher   string `json:"publisher" binding:"required"`
	ReleaseDate string `json:"release_date" binding:"required"`
	Image       string `json:"image"`
	GenreIDs    []uint `json:"genre_ids"`
}

type UpdateGameRequest struct {
	Title       string `json:"title" binding:"required"`
	Developer   string `json:"developer" binding:"required"`
	Publisher   string `json:"publisher" binding:"required"`
	ReleaseDate string `json:"release_date" binding:"required"`
}

type UpdateGameImageRequest struct {
	Image string `json:"image" binding:"required"`
}

func ownsGame(userID uint, game *models.Game) bool {
	return game.UserID != nil && *game.UserID == userID
}

func CreateGame(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var body CreateGameRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	releaseDate, err := time.Parse(types.ReleaseDateFormat, body.ReleaseDate)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "release_date must be formatted as YYYY-MM-DD"})
		return
	}

	_, err = store.GetGameByTitle(db.DB, body.Title)

	if err == nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "There is already a game with this title"})
		return
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		zap.L().Error("checking existing game", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	game := models.Game{
		Title:       body.Title,
		Developer:   body.Developer,
		Publisher:   body.Publisher,
		ReleaseDate: releaseDate,
		Image:       body.Image,
		UserID:      &currentUser.ID,
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		return store.CreateGame(tx, &game, body.GenreIDs)
	})

	if err != nil {
		zap.L().Error("creating game", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, types.NewGameResponse(game))
}

func GetGame(ctx *gin.Context) {
	gameID, ok := uintParam(ctx, "game_id")

	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game id"})
		return
	}

	game, err := store.GetGameByID(db.DB, gameID)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
			return
		}
		zap.L().Error("fetching game", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, types.NewGameResponse(*game))
}

func ListGames(ctx *gin.Context) {
	skip, limit := pagination(ctx)

	games, err := store.ListGames(db.DB, skip, limit)

	if err != nil {
		zap.L().Error("listing games", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, types.NewGameResponses(games))
}

func UpdateGame(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	gameID, ok := uintParam(ctx, "game_id")

	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game id"})
		return
	}

	var body UpdateGameRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	releaseDate, err := time.Parse(types.ReleaseDateFormat, body.ReleaseDate)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "release_date must be formatted as YYYY-MM-DD"})
		return
	}

	game, err := store.GetGameByID(db.DB, gameID)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
			return
		}
		zap.L().Error("fetching game", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if !ownsGame(currentUser.ID, game) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Only the owner can modify this game"})
		return
	}

	if body.Title != game.Title {
		if existing, err := store.GetGameByTitle(db.DB, body.Title); err == nil && existing.ID != game.ID {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "There is already a game with this title"})
			return
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			zap.L().Error("checking existing game", zap.Error(err))
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		return store.UpdateGame(tx, game, map[string]interface{}{
			"title":        body.Title,
			"developer":    body.Developer,
			"publisher":    body.Publisher,
			"release_date": releaseDate,
		})
	})

	if err != nil {
		zap.L().Error("updating game", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	refreshed, err := store.GetGameByID(db.DB, game.ID)

	if err != nil {
		zap.L().Error("fetching game", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, types.NewGameResponse(*refreshed))
}

func UpdateGameImage(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	gameID, ok := uintParam(ctx, "game_id")

	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game id"})
		return
	}

	var body UpdateGameImageRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	game, err := store.GetGameByID(db.DB, gameID)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
			return
		}
		zap.L().Error("fetching game", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if !ownsGame(currentUser.ID, game) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Only the owner can modify this game"})
		return
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		return store.UpdateGame(tx, game, map[string]interface{}{"image": body.Image})
	})

	if err != nil {
		zap.L().Error("updating game image", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	refreshed, err := store.GetGameByID(db.DB, game.ID)

	if err != nil {
		zap.L().Error("fetching game", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, types.NewGameResponse(*refreshed))
}

func DeleteGame(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	gameID, ok := uintParam(ctx, "game_id")

	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game id"})
		return
	}

	game, err := store.GetGameByID(db.DB, gameID)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
			return
		}
		zap.L().Error("fetching game", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if !ownsGame(currentUser.ID, game) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Only the owner can modify this game"})
		return
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		return store.DeleteGame(tx, game)
	})

	if err != nil {
		zap.L().Error("deleting game", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Game has been deleted successfully"})
}

// AddGenreToGame attaches a genre to a game the caller owns. Checks run in a
// fixed order: game exists, caller owns it, genre exists, pair not already
// present.
func AddGenreToGame(ctx *gin.Context) {
	game, genre, ok := resolveGameGenre(ctx)

	if !ok {
		return
	}

	hasGenre, err := store.GameHasGenre(db.DB, game.ID, genre.ID)

	if err != nil {
		zap.L().Error("checking game genre", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if hasGenre {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "The game already has this genre"})
		return
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		return store.AddGenreToGame(tx, game, genre)
	})

	if err != nil {
		zap.L().Error("adding genre to game", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	refreshed, err := store.GetGameByID(db.DB, game.ID)

	if err != nil {
		zap.L().Error("fetching game", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, types.NewGameResponse(*refreshed))
}

// RemoveGenreFromGame detaches a genre, with the same check order as
// AddGenreToGame.
func RemoveGenreFromGame(ctx *gin.Context) {
	game, genre, ok := resolveGameGenre(ctx)

	if !ok {
		return
	}

	hasGenre, err := store.GameHasGenre(db.DB, game.ID, genre.ID)

	if err != nil {
		zap.L().Error("checking game genre", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if !hasGenre {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "The game does not have this genre"})
		return
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		return store.RemoveGenreFromGame(tx, game, genre)
	})

	if err != nil {
		zap.L().Error("removing genre from game", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	refreshed, err := store.GetGameByID(db.DB, game.ID)

	if err != nil {
		zap.L().Error("fetching game", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, types.NewGameResponse(*refreshed))
}

// resolveGameGenre runs the shared leading checks of the genre membership
// endpoints and writes the error response itself when one fails.
func resolveGameGenre(ctx *gin.Context) (*models.Game, *models.Genre, bool) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return nil, nil, false
	}

	gameID, ok := uintParam(ctx, "game_id")

	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game id"})
		return nil, nil, false
	}

	genreID, ok := uintParam(ctx, "genre_id")

	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid genre id"})
		return nil, nil, false
	}

	game, err := store.GetGameByID(db.DB, gameID)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
			return nil, nil, false
		}
		zap.L().Error("fetching game", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return nil, nil, false
	}

	if !ownsGame(currentUser.ID, game) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Only the owner can modify this game"})
		return nil, nil, false
	}

	genre, err := store.GetGenreByID(db.DB, genreID)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Genre not found"})
			return nil, nil, false
		}
		zap.L().Error("fetching genre", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return nil, nil, false
	}

	return game, genre, true
}
