package models

import "time"

type Game struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Title       string    `gorm:"uniqueIndex;not null"`
	Developer   string    `gorm:"not null"`
	Publisher   string    `gorm:"not null"`
	ReleaseDate time.Time `gorm:"not null"`
	Image       string

	// Owner is nullified, not cascaded, when the user is deleted.
	UserID *uint `gorm:"index"`

	// Relationships
	Genres        []Genre        `gorm:"many2many:game_genres;constraint:OnDelete:CASCADE"`
	Backlogs      []Backlog      `gorm:"many2many:backlog_games;constraint:OnDelete:CASCADE"`
	CompleteGames []CompleteGame `gorm:"many2many:complete_game_games;constraint:OnDelete:CASCADE"`
}
