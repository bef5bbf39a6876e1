package models

import "time"

// Backlog is the set of games a user intends to play. At most one per user;
// the unique index settles concurrent creates that pass the application check.
type Backlog struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	UserID uint `gorm:"uniqueIndex;not null"`

	// Relationships
	Games []Game `gorm:"many2many:backlog_games;constraint:OnDelete:CASCADE"`
}
