package models

import "time"

type Genre struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Title string `gorm:"uniqueIndex;not null"`

	// Owner is nullified, not cascaded, when the user is deleted.
	UserID *uint `gorm:"index"`

	// Relationships
	Games []Game `gorm:"many2many:game_genres;constraint:OnDelete:CASCADE"`
}
