package handlers

import (
	"errors"
	"net/http"

	"github.com/gameshelf-dev/gameshelf/db"
	"github.com/gameshelf-dev/gameshelf/internal/store"
	"github.com/gameshelf-dev/gameshelf/internal/types"
	"github.com/gameshelf-dev/gameshelf/internal/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CreateCompleteGame gives the caller a complete-game list. A user has at
// most one.
func CreateCompleteGame(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	_, err = store.GetCompleteGameByUserID(db.DB, currentUser.ID)

	if err == nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "User already has a complete game list"})
		return
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		zap.L().Error("checking existing complete game list", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	completeGame, err := store.CreateCompleteGame(db.DB, currentUser.ID)

	if err != nil {
		zap.L().Error("creating complete game list", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, types.NewCompleteGameResponse(*completeGame))
}

func GetCompleteGame(ctx *gin.Context) {
	completeGameID, ok := uintParam(ctx, "complete_game_id")

	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid complete game id"})
		return
	}

	completeGame, err := store.GetCompleteGameByID(db.DB, completeGameID)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Complete game list not found"})
			return
		}
		zap.L().Error("fetching complete game list", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, types.NewCompleteGameResponse(*completeGame))
}

func ListCompleteGames(ctx *gin.Context) {
	skip, limit := pagination(ctx)

	completeGames, err := store.ListCompleteGames(db.DB, skip, limit)

	if err != nil {
		zap.L().Error("listing complete game lists", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	response := make([]types.CollectionResponse, 0, len(completeGames))

	for _, completeGame := range completeGames {
		response = append(response, types.NewCompleteGameResponse(completeGame))
	}

	ctx.JSON(http.StatusOK, response)
}

// DeleteCompleteGame removes the caller's own list and its membership rows.
func DeleteCompleteGame(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	completeGame, err := store.GetCompleteGameByUserID(db.DB, currentUser.ID)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "User has no complete game list"})
			return
		}
		zap.L().Error("fetching complete game list", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		return store.DeleteCompleteGame(tx, completeGame)
	})

	if err != nil {
		zap.L().Error("deleting complete game list", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Complete game list has been deleted successfully"})
}

// AddGameToCompleteGame inserts a membership row for ?game_id. Same check
// order as the backlog variant.
func AddGameToCompleteGame(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	gameID, ok := uintQuery(ctx, "game_id")

	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game id"})
		return
	}

	completeGame, err := store.GetCompleteGameByUserID(db.DB, currentUser.ID)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "User has no complete game list"})
			return
		}
		zap.L().Error("fetching complete game list", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
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

	hasGame, err := store.CompleteGameHasGame(db.DB, completeGame.ID, game.ID)

	if err != nil {
		zap.L().Error("checking complete game membership", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if hasGame {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "The game has already been added to the complete game list"})
		return
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		return store.AddGameToCompleteGame(tx, completeGame, game)
	})

	if err != nil {
		zap.L().Error("adding game to complete game list", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	refreshed, err := store.GetCompleteGameByID(db.DB, completeGame.ID)

	if err != nil {
		zap.L().Error("fetching complete game list", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, types.NewCompleteGameResponse(*refreshed))
}

// RemoveGameFromCompleteGame deletes the membership row for ?game_id.
func RemoveGameFromCompleteGame(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	gameID, ok := uintQuery(ctx, "game_id")

	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game id"})
		return
	}

	completeGame, err := store.GetCompleteGameByUserID(db.DB, currentUser.ID)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "User has no complete game list"})
			return
		}
		zap.L().Error("fetching complete game list", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
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

	hasGame, err := store.CompleteGameHasGame(db.DB, completeGame.ID, game.ID)

	if err != nil {
		zap.L().Error("checking complete game membership", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if !hasGame {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "This game is not in the complete game list"})
		return
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		return store.RemoveGameFromCompleteGame(tx, completeGame, game)
	})

	if err != nil {
		zap.L().Error("removing game from complete game list", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	refreshed, err := store.GetCompleteGameByID(db.DB, completeGame.ID)

	if err != nil {
		zap.L().Error("fetching complete game list", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, types.NewCompleteGameResponse(*refreshed))
}
