package models

import (
	"time"

	"gorm.io/gorm"
)

// Comment is a reply attached to a post. Author and timestamp are fixed at
// creation; only the content may be edited afterwards. Comments for a post
// are always listed oldest first.
type Comment struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Content string `gorm:"not null" json:"content"`
	UserID  uint   `gorm:"not null" json:"user_id"`
	PostID  uint   `gorm:"not null" json:"post_id"`
	User    User   `gorm:"foreignKey:UserID" json:"user"`
	Post    Post   `gorm:"foreignKey:PostID" json:"post,omitempty"`

	// DisplayCreatedAt is CreatedAt rendered in the display timezone (computed)
	DisplayCreatedAt string `gorm:"-" json:"display_created_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate stamps the creation time server-side in UTC.
func (c *Comment) BeforeCreate(*gorm.DB) error {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	return nil
}

// AfterFind populates the display-formatted timestamp.
func (c *Comment) AfterFind(*gorm.DB) error {
	c.DisplayCreatedAt = FormatDisplayTime(c.CreatedAt)
	return nil
}
