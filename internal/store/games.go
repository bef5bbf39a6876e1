package store

import (
	"github.com/gameshelf-dev/gameshelf/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CreateGame persists a game and attaches the genres that resolve from
// genreIDs. IDs that match no genre are skipped.
func CreateGame(db *gorm.DB, game *models.Game, genreIDs []uint) error {
	if len(genreIDs) > 0 {
		var genres []models.Genre

		if err := db.Where("id IN ?", genreIDs).Find(&genres).Error; err != nil {
			return err
		}

		game.Genres = genres
	}

	return db.Create(game).Error
}

// GetGameByID loads a game with its genre list.
func GetGameByID(db *gorm.DB, gameID uint) (*models.Game, error) {
	var game models.Game

	if err := db.Preload("Genres").First(&game, gameID).Error; err != nil {
		return nil, err
	}

	return &game, nil
}

// GetGameByTitle loads the bare game row. Used for uniqueness checks.
func GetGameByTitle(db *gorm.DB, title string) (*models.Game, error) {
	var game models.Game

	if err := db.Where("title = ?", title).First(&game).Error; err != nil {
		return nil, err
	}

	return &game, nil
}

// ListGames returns a page of games with their genre lists, ordered by id.
func ListGames(db *gorm.DB, skip int, limit int) ([]models.Game, error) {
	var games []models.Game

	err := db.
		Preload("Genres").
		Order("id").
		Offset(skip).
		Limit(limit).
		Find(&games).Error

	if err != nil {
		return nil, err
	}

	return games, nil
}

func UpdateGame(db *gorm.DB, game *models.Game, updates map[string]interface{}) error {
	return db.Model(game).Updates(updates).Error
}

// DeleteGame removes the game and its membership rows in game_genres,
// backlog_games and complete_game_games.
func DeleteGame(db *gorm.DB, game *models.Game) error {
	return db.Select(clause.Associations).Delete(game).Error
}

func AddGenreToGame(db *gorm.DB, game *models.Game, genre *models.Genre) error {
	return db.Model(game).Association("Genres").Append(genre)
}

func RemoveGenreFromGame(db *gorm.DB, game *models.Game, genre *models.Genre) error {
	return db.Model(game).Association("Genres").Delete(genre)
}

// GameHasGenre reports whether the (game, genre) membership row exists.
func GameHasGenre(db *gorm.DB, gameID uint, genreID uint) (bool, error) {
	var count int64

	err := db.Table("game_genres").
		Where("game_id = ? AND genre_id = ?", gameID, genreID).
		Count(&count).Error

	if err != nil {
		return false, err
	}

	return count > 0, nil
}
