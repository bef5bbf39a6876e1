package models

import "time"

// CompleteGame is the set of games a user has finished. At most one per user.
type CompleteGame struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	UserID uint `gorm:"uniqueIndex;not null"`

	// Relationships
	Games []Game `gorm:"many2many:complete_game_games;constraint:OnDelete:CASCADE"`
}
