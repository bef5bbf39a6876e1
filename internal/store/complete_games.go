package store

import (
	"github.com/gameshelf-dev/gameshelf/internal/models"
	"gorm.io/gorm"
)

func CreateCompleteGame(db *gorm.DB, userID uint) (*models.CompleteGame, error) {
	completeGame := models.CompleteGame{UserID: userID}

	if err := db.Create(&completeGame).Error; err != nil {
		return nil, err
	}

	return &completeGame, nil
}

// GetCompleteGameByID loads a complete-game list with its games and genres.
func GetCompleteGameByID(db *gorm.DB, completeGameID uint) (*models.CompleteGame, error) {
	var completeGame models.CompleteGame

	if err := db.Preload("Games.Genres").First(&completeGame, completeGameID).Error; err != nil {
		return nil, err
	}

	return &completeGame, nil
}

// GetCompleteGameByUserID loads the caller's complete-game list, bare.
func GetCompleteGameByUserID(db *gorm.DB, userID uint) (*models.CompleteGame, error) {
	var completeGame models.CompleteGame

	if err := db.Where("user_id = ?", userID).First(&completeGame).Error; err != nil {
		return nil, err
	}

	return &completeGame, nil
}

// ListCompleteGames returns a page of complete-game lists with their games.
func ListCompleteGames(db *gorm.DB, skip int, limit int) ([]models.CompleteGame, error) {
	var completeGames []models.CompleteGame

	err := db.
		Preload("Games.Genres").
		Order("id").
		Offset(skip).
		Limit(limit).
		Find(&completeGames).Error

	if err != nil {
		return nil, err
	}

	return completeGames, nil
}

// DeleteCompleteGame removes the list and its membership rows.
func DeleteCompleteGame(db *gorm.DB, completeGame *models.CompleteGame) error {
	if err := db.Model(completeGame).Association("Games").Clear(); err != nil {
		return err
	}

	return db.Delete(completeGame).Error
}

func AddGameToCompleteGame(db *gorm.DB, completeGame *models.CompleteGame, game *models.Game) error {
	return db.Model(completeGame).Association("Games").Append(game)
}

func RemoveGameFromCompleteGame(db *gorm.DB, completeGame *models.CompleteGame, game *models.Game) error {
	return db.Model(completeGame).Association("Games").Delete(game)
}

// CompleteGameHasGame reports whether the membership row exists.
func CompleteGameHasGame(db *gorm.DB, completeGameID uint, gameID uint) (bool, error) {
	var count int64

	err := db.Table("complete_game_games").
		Where("complete_game_id = ? AND game_id = ?", completeGameID, gameID).
		Count(&count).Error

	if err != nil {
		return false, err
	}

	return count > 0, nil
}
