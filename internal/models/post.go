package models

import (
	"time"

	"gorm.io/gorm"
)

// displayZone is the fixed timezone used when rendering timestamps.
// Storage is always UTC.
var displayZone = func() *time.Location {
	loc, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		return time.FixedZone("JST", 9*60*60)
	}
	return loc
}()

// Post is a user-authored entry on the feed. The owning user is set once at
// creation and never reassigned. Deleting a post removes its likes and
// comments with it.
type Post struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Title   string `gorm:"not null" json:"title"`
	Content string `gorm:"not null" json:"content"`
	UserID  uint   `gorm:"not null" json:"user_id"`
	User    User   `gorm:"foreignKey:UserID" json:"user"`

	Likes    []Like    `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"-"`
	Comments []Comment `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"comments,omitempty"`

	// LikesCount is not persisted; computed at query time
	LikesCount int64 `gorm:"->" json:"likes_count"`
	// CommentsCount is not persisted; computed at query time
	CommentsCount int64 `gorm:"->" json:"comments_count"`
	// Liked indicates whether the current requesting user liked this post (computed)
	Liked bool `gorm:"->" json:"liked"`
	// DisplayCreatedAt is CreatedAt rendered in the display timezone (computed)
	DisplayCreatedAt string `gorm:"-" json:"display_created_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate stamps the creation time server-side in UTC.
func (p *Post) BeforeCreate(*gorm.DB) error {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	return nil
}

// AfterFind populates the display-formatted timestamp.
func (p *Post) AfterFind(*gorm.DB) error {
	p.DisplayCreatedAt = FormatDisplayTime(p.CreatedAt)
	return nil
}

// FormatDisplayTime converts a stored UTC timestamp into the fixed display
// timezone using the product's date format.
func FormatDisplayTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(displayZone).Format("2006/01/02 15:04")
}
