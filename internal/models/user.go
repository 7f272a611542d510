package models

import (
	"time"
)

// User represents a registered user. Users are created at registration and
// only ever read afterwards; no exposed operation mutates or deletes them.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;size:50;not null" json:"username"`
	Email        string    `gorm:"uniqueIndex;size:100;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`

	// Relations
	Investments []Investment `gorm:"foreignKey:UserID" json:"investments,omitempty"`
}

// TableName specifies the table name for User model
func (User) TableName() string {
	return "users"
}
