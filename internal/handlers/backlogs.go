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

// CreateBacklog gives the caller a backlog. A user has at most one.
func CreateBacklog(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	_, err = store.GetBacklogByUserID(db.DB, currentUser.ID)

	if err == nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "User already has a backlog"})
		return
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		zap.L().Error("checking existing backlog", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	backlog, err := store.CreateBacklog(db.DB, currentUser.ID)

	if err != nil {
		zap.L().Error("creating backlog", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, types.NewBacklogResponse(*backlog))
}

func GetBacklog(ctx *gin.Context) {
	backlogID, ok := uintParam(ctx, "backlog_id")

	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid backlog id"})
		return
	}

	backlog, err := store.GetBacklogByID(db.DB, backlogID)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Backlog not found"})
			return
		}
		zap.L().Error("fetching backlog", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, types.NewBacklogResponse(*backlog))
}

func ListBacklogs(ctx *gin.Context) {
	skip, limit := pagination(ctx)

	backlogs, err := store.ListBacklogs(db.DB, skip, limit)

	if err != nil {
		zap.L().Error("listing backlogs", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	response := make([]types.CollectionResponse, 0, len(backlogs))

	for _, backlog := range backlogs {
		response = append(response, types.NewBacklogResponse(backlog))
	}

	ctx.JSON(http.StatusOK, response)
}

// DeleteBacklog removes the caller's own backlog and its membership rows.
func DeleteBacklog(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	backlog, err := store.GetBacklogByUserID(db.DB, currentUser.ID)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "User has no backlog"})
			return
		}
		zap.L().Error("fetching backlog", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		return store.DeleteBacklog(tx, backlog)
	})

	if err != nil {
		zap.L().Error("deleting backlog", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Backlog has been deleted successfully"})
}

// AddGameToBacklog inserts a membership row for ?game_id. Checks run in a
// fixed order: caller has a backlog, game exists, pair not already present.
func AddGameToBacklog(ctx *gin.Context) {
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

	backlog, err := store.GetBacklogByUserID(db.DB, currentUser.ID)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "User has no backlog"})
			return
		}
		zap.L().Error("fetching backlog", zap.Error(err))
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

	hasGame, err := store.BacklogHasGame(db.DB, backlog.ID, game.ID)

	if err != nil {
		zap.L().Error("checking backlog membership", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if hasGame {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "The game has already been added to the backlog"})
		return
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		return store.AddGameToBacklog(tx, backlog, game)
	})

	if err != nil {
		zap.L().Error("adding game to backlog", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	refreshed, err := store.GetBacklogByID(db.DB, backlog.ID)

	if err != nil {
		zap.L().Error("fetching backlog", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, types.NewBacklogResponse(*refreshed))
}

// RemoveGameFromBacklog deletes the membership row for ?game_id, with the
// same leading checks as AddGameToBacklog.
func RemoveGameFromBacklog(ctx *gin.Context) {
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

	backlog, err := store.GetBacklogByUserID(db.DB, currentUser.ID)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "User has no backlog"})
			return
		}
		zap.L().Error("fetching backlog", zap.Error(err))
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

	hasGame, err := store.BacklogHasGame(db.DB, backlog.ID, game.ID)

	if err != nil {
		zap.L().Error("checking backlog membership", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if !hasGame {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "This game is not in the backlog"})
		return
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		return store.RemoveGameFromBacklog(tx, backlog, game)
	})

	if err != nil {
		zap.L().Error("removing game from backlog", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	refreshed, err := store.GetBacklogByID(db.DB, backlog.ID)

	if err != nil {
		zap.L().Error("fetching backlog", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, types.NewBacklogResponse(*refreshed))
}
