package model

import "time"

// Role determines which side of the marketplace a user is on.
type Role string

const (
	// RoleProvider is a landowner who lists farmland.
	RoleProvider Role = "PROVIDER"
	// RoleSeeker is a user looking for farmland to rent.
	RoleSeeker Role = "SEEKER"
)

// User represents an account in the marketplace.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Name         *string   `json:"name" gorm:"size:255"`
	Phone        *string   `json:"phone" gorm:"size:32"`
	ProfileImage *string   `json:"profileImage,omitempty" gorm:"type:longtext"` // Base64 image
	Role         Role      `json:"role" gorm:"size:16;not null;index"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	Farmlands []Farmland `json:"farmlands,omitempty" gorm:"foreignKey:ProviderID"`
	Favorites []Favorite `json:"favorites,omitempty" gorm:"foreignKey:UserID"`
}
