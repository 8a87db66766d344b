// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// RoleUser is the role assigned to every account at registration.
const RoleUser = "USER"

// User represents a registered account. Users are never deleted; only the
// password and role may change after creation.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"unique;not null" json:"username"`
	Password  string    `gorm:"not null" json:"-"`
	Role      string    `gorm:"not null;default:USER" json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Posts     []Post    `gorm:"foreignKey:UserID" json:"posts,omitempty"`
}
