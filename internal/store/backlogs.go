package store

import (
	"github.com/gameshelf-dev/gameshelf/internal/models"
	"gorm.io/gorm"
)

func CreateBacklog(db *gorm.DB, userID uint) (*models.Backlog, error) {
	backlog := models.Backlog{UserID: userID}

	if err := db.Create(&backlog).Error; err != nil {
		return nil, err
	}

	return &backlog, nil
}

// GetBacklogByID loads a backlog with its games and their genres.
func GetBacklogByID(db *gorm.DB, backlogID uint) (*models.Backlog, error) {
	var backlog models.Backlog

	if err := db.Preload("Games.Genres").First(&backlog, backlogID).Error; err != nil {
		return nil, err
	}

	return &backlog, nil
}

// GetBacklogByUserID loads the caller's backlog, bare. Used for the
// possession checks before any backlog mutation.
func GetBacklogByUserID(db *gorm.DB, userID uint) (*models.Backlog, error) {
	var backlog models.Backlog

	if err := db.Where("user_id = ?", userID).First(&backlog).Error; err != nil {
		return nil, err
	}

	return &backlog, nil
}

// ListBacklogs returns a page of backlogs with their games and genres.
func ListBacklogs(db *gorm.DB, skip int, limit int) ([]models.Backlog, error) {
	var backlogs []models.Backlog

	err := db.
		Preload("Games.Genres").
		Order("id").
		Offset(skip).
		Limit(limit).
		Find(&backlogs).Error

	if err != nil {
		return nil, err
	}

	return backlogs, nil
}

// DeleteBacklog removes the backlog and its membership rows.
func DeleteBacklog(db *gorm.DB, backlog *models.Backlog) error {
	if err := db.Model(backlog).Association("Games").Clear(); err != nil {
		return err
	}

	return db.Delete(backlog).Error
}

func AddGameToBacklog(db *gorm.DB, backlog *models.Backlog, game *models.Game) error {
	return db.Model(backlog).Association("Games").Append(game)
}

func RemoveGameFromBacklog(db *gorm.DB, backlog *models.Backlog, game *models.Game) error {
	return db.Model(backlog).Association("Games").Delete(game)
}

// BacklogHasGame reports whether the (backlog, game) membership row exists.
func BacklogHasGame(db *gorm.DB, backlogID uint, gameID uint) (bool, error) {
	var count int64

	err := db.Table("backlog_games").
		Where("backlog_id = ? AND game_id = ?", backlogID, gameID).
		Count(&count).Error

	if err != nil {
		return false, err
	}

	return count > 0, nil
}
