package handlers

import (
	"errors"
	"net/http"

	"github.com/gameshelf-dev/gameshelf/db"
	"github.com/gameshelf-dev/gameshelf/internal/models"
	"github.com/gameshelf-dev/gameshelf/internal/store"
	"github.com/gameshelf-dev/gameshelf/internal/types"
	"github.com/gameshelf-dev/gameshelf/internal/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CreateGenreRequest struct {
	Title string `json:"title" binding:"required"`
}

type UpdateGenreRequest struct {
	Title string `json:"title" binding:"required"`
}

func ownsGenre(userID uint, genre *models.Genre) bool {
	return genre.UserID != nil && *genre.UserID == userID
}

func CreateGenre(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var body CreateGenreRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	_, err = store.GetGenreByTitle(db.DB, body.Title)

	if err == nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "There is already a genre with this title"})
		return
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		zap.L().Error("checking existing genre", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	genre := models.Genre{
		Title:  body.Title,
		UserID: &currentUser.ID,
	}

	if err := store.CreateGenre(db.DB, &genre); err != nil {
		zap.L().Error("creating genre", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, types.NewGenreResponse(genre))
}

func GetGenre(ctx *gin.Context) {
	genreID, ok := uintParam(ctx, "genre_id")

	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid genre id"})
		return
	}

	genre, err := store.GetGenreByID(db.DB, genreID)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Genre not found"})
			return
		}
		zap.L().Error("fetching genre", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, types.NewGenreResponse(*genre))
}

func ListGenres(ctx *gin.Context) {
	skip, limit := pagination(ctx)

	genres, err := store.ListGenres(db.DB, skip, limit)

	if err != nil {
		zap.L().Error("listing genres", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, types.NewGenreResponses(genres))
}

func UpdateGenre(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	genreID, ok := uintParam(ctx, "genre_id")

	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid genre id"})
		return
	}

	var body UpdateGenreRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	genre, err := store.GetGenreByID(db.DB, genreID)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Genre not found"})
			return
		}
		zap.L().Error("fetching genre", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if !ownsGenre(currentUser.ID, genre) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Only the owner can modify this genre"})
		return
	}

	if body.Title != genre.Title {
		if existing, err := store.GetGenreByTitle(db.DB, body.Title); err == nil && existing.ID != genre.ID {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "There is already a genre with this title"})
			return
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			zap.L().Error("checking existing genre", zap.Error(err))
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		return store.UpdateGenre(tx, genre, body.Title)
	})

	if err != nil {
		zap.L().Error("updating genre", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	refreshed, err := store.GetGenreByID(db.DB, genre.ID)

	if err != nil {
		zap.L().Error("fetching genre", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, types.NewGenreResponse(*refreshed))
}

func DeleteGenre(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	genreID, ok := uintParam(ctx, "genre_id")

	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid genre id"})
		return
	}

	genre, err := store.GetGenreByID(db.DB, genreID)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Genre not found"})
			return
		}
		zap.L().Error("fetching genre", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if !ownsGenre(currentUser.ID, genre) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Only the owner can modify this genre"})
		return
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		return store.DeleteGenre(tx, genre)
	})

	if err != nil {
		zap.L().Error("deleting genre", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Genre has been deleted successfully"})
}
