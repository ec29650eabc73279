package models

import (
	"time"
)

// Profile carries the bio attached to exactly one user. It is created right
// after the user row during signup; the two inserts are not transactional.
type Profile struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Bio       string    `gorm:"not null" json:"bio"`
	UserID    uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
