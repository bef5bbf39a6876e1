// Package store holds the database operations for each entity. Every function
// takes the request's own *gorm.DB handle (a transaction for mutations) rather
// than reaching for a global connection, and every reader states which related
// collections it loads.
package store

import (
	"errors"

	"github.com/gameshelf-dev/gameshelf/internal/models"
	"gorm.io/gorm"
)

func CreateUser(db *gorm.DB, user *models.User) error {
	return db.Create(user).Error
}

// GetUserByUsername loads the bare user row, no relationships. Used by the
// authentication paths, which only need the id and the password hash.
func GetUserByUsername(db *gorm.DB, username string) (*models.User, error) {
	var user models.User

	if err := db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

// GetUserDetail loads a user with backlog, complete-game, authored games
// (including their genres) and authored genres.
func GetUserDetail(db *gorm.DB, username string) (*models.User, error) {
	var user models.User

	err := db.
		Preload("Backlog").
		Preload("CompleteGame").
		Preload("Games.Genres").
		Preload("Genres").
		Where("username = ?", username).
		First(&user).Error

	if err != nil {
		return nil, err
	}

	return &user, nil
}

// ListUsers returns a page of users with the same relationships GetUserDetail
// loads.
func ListUsers(db *gorm.DB, skip int, limit int) ([]models.User, error) {
	var users []models.User

	err := db.
		Preload("Backlog").
		Preload("CompleteGame").
		Preload("Games.Genres").
		Preload("Genres").
		Order("id").
		Offset(skip).
		Limit(limit).
		Find(&users).Error

	if err != nil {
		return nil, err
	}

	return users, nil
}

func RenameUser(db *gorm.DB, user *models.User, newUsername string) error {
	return db.Model(user).Update("username", newUsername).Error
}

// DeleteUser removes the user, its backlog and complete-game together with
// their membership rows, and detaches (but keeps) the games and genres the
// user authored. Expects to run inside a transaction.
func DeleteUser(db *gorm.DB, user *models.User) error {
	if err := db.Model(&models.Game{}).Where("user_id = ?", user.ID).Update("user_id", nil).Error; err != nil {
		return err
	}

	if err := db.Model(&models.Genre{}).Where("user_id = ?", user.ID).Update("user_id", nil).Error; err != nil {
		return err
	}

	var backlog models.Backlog
	err := db.Where("user_id = ?", user.ID).First(&backlog).Error

	switch {
	case err == nil:
		if err := DeleteBacklog(db, &backlog); err != nil {
			return err
		}
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return err
	}

	var completeGame models.CompleteGame
	err = db.Where("user_id = ?", user.ID).First(&completeGame).Error

	switch {
	case err == nil:
		if err := DeleteCompleteGame(db, &completeGame); err != nil {
			return err
		}
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return err
	}

	return db.Delete(user).Error
}
