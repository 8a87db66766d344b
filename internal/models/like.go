package models

import (
	"time"

	"gorm.io/gorm"
)

// LikeKey is the composite identity of a like: one row per (user, post) pair.
// Equality is structural over both fields, so the zero-value comparison
// operators work as the map/lookup key.
type LikeKey struct {
	UserID uint
	PostID uint
}

// Like records that a user likes a post. Its existence is the truth value;
// rows are only ever inserted or deleted, never updated in place. The
// (user_id, post_id) pair is the primary key, so the store itself rejects a
// duplicate like for the same pair.
type Like struct {
	UserID    uint      `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	PostID    uint      `gorm:"primaryKey;autoIncrement:false" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
	Post Post `gorm:"foreignKey:PostID" json:"-"`
}

// Key returns the composite identity of this like.
func (l *Like) Key() LikeKey {
	return LikeKey{UserID: l.UserID, PostID: l.PostID}
}

// BeforeCreate stamps the creation time server-side in UTC.
func (l *Like) BeforeCreate(*gorm.DB) error {
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now().UTC()
	}
	return nil
}
