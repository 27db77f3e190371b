package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account that can generate and keep articles
type User struct {
	ID           uuid.UUID `json:"id" db:"id" gorm:"primaryKey;type:uuid"`
	Username     string    `json:"username" db:"username" gorm:"uniqueIndex;not null"`
	Email        string    `json:"email" db:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" db:"password_hash" gorm:"not null"`

	// Usage stats surfaced on the profile page
	ArticlesGenerated int        `json:"articles_generated" db:"articles_generated" gorm:"default:0"`
	LastLoginAt       *time.Time `json:"last_login_at" db:"last_login_at"`

	CreatedAt time.Time `json:"created_at" db:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at" gorm:"autoUpdateTime"`
	IsActive  bool      `json:"is_active" db:"is_active" gorm:"default:true"`

	// Relationships
	Articles []Article `json:"articles,omitempty" gorm:"foreignKey:UserID"`
}

// TableName sets the table name for the User model
func (User) TableName() string {
	return "users"
}
