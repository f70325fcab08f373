package model

import "time"

// Favorite links a user to a farmland they bookmarked. Unique per
// (user, farmland) pair.
type Favorite struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	UserID     uint      `json:"userId" gorm:"not null;uniqueIndex:idx_user_farmland"`
	FarmlandID uint      `json:"farmlandId" gorm:"not null;uniqueIndex:idx_user_farmland"`
	CreatedAt  time.Time `json:"created_at"`

	// Relations
	User     User     `json:"-" gorm:"foreignKey:UserID"`
	Farmland Farmland `json:"farmland,omitempty" gorm:"foreignKey:FarmlandID"`
}
