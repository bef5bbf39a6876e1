package store

import (
	"github.com/gameshelf-dev/gameshelf/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func CreateGenre(db *gorm.DB, genre *models.Genre) error {
	return db.Create(genre).Error
}

func GetGenreByID(db *gorm.DB, genreID uint) (*models.Genre, error) {
	var genre models.Genre

	if err := db.First(&genre, genreID).Error; err != nil {
		return nil, err
	}

	return &genre, nil
}

// GetGenreByTitle loads the bare genre row. Used for uniqueness checks.
func GetGenreByTitle(db *gorm.DB, title string) (*models.Genre, error) {
	var genre models.Genre

	if err := db.Where("title = ?", title).First(&genre).Error; err != nil {
		return nil, err
	}

	return &genre, nil
}

func ListGenres(db *gorm.DB, skip int, limit int) ([]models.Genre, error) {
	var genres []models.Genre

	err := db.
		Order("id").
		Offset(skip).
		Limit(limit).
		Find(&genres).Error

	if err != nil {
		return nil, err
	}

	return genres, nil
}

func UpdateGenre(db *gorm.DB, genre *models.Genre, title string) error {
	return db.Model(genre).Update("title", title).Error
}

// DeleteGenre removes the genre and its membership rows in game_genres.
func DeleteGenre(db *gorm.DB, genre *models.Genre) error {
	return db.Select(clause.Associations).Delete(genre).Error
}
