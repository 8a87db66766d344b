// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"loopline/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options control how much demo data is generated.
type Options struct {
	Users           int
	PostsPerUser    int
	CommentsPerPost int
	LikeChance      float64 // probability a given user likes a given post
	Password        string  // plaintext password for every seeded user
}

// DefaultOptions returns a small but representative demo data set.
func DefaultOptions() Options {
	return Options{
		Users:           8,
		PostsPerUser:    4,
		CommentsPerPost: 3,
		LikeChance:      0.35,
		Password:        "loopline-demo",
	}
}

// DemoData seeds the default demo data set.
func DemoData(db *gorm.DB) error {
	return Generate(db, DefaultOptions())
}

// Generate creates fake users, posts, comments, and likes. Creation times are
// spread over the past 30 days so the feed ordering is meaningful.
func Generate(db *gorm.DB, opts Options) error {
	gofakeit.Seed(time.Now().UnixNano())
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	hashed, err := bcrypt.GenerateFromPassword([]byte(opts.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}

	users := make([]*models.User, 0, opts.Users)
	for i := 0; i < opts.Users; i++ {
		user := &models.User{
			Username: fmt.Sprintf("%s%d", gofakeit.Username(), i),
			Password: string(hashed),
			Role:     models.RoleUser,
		}
		if err := db.Create(user).Error; err != nil {
			return fmt.Errorf("seed user: %w", err)
		}
		users = append(users, user)
	}

	posts := make([]*models.Post, 0, opts.Users*opts.PostsPerUser)
	for _, user := range users {
		for i := 0; i < opts.PostsPerUser; i++ {
			post := &models.Post{
				Title:     gofakeit.Sentence(5),
				Content:   gofakeit.Paragraph(1, 3, 5, "\n"),
				UserID:    user.ID,
				CreatedAt: randomPastTime(r, 30),
			}
			if err := db.Create(post).Error; err != nil {
				return fmt.Errorf("seed post: %w", err)
			}
			posts = append(posts, post)
		}
	}

	for _, post := range posts {
		for i := 0; i < opts.CommentsPerPost; i++ {
			commenter := users[r.Intn(len(users))]
			comment := &models.Comment{
				Content:   gofakeit.Sentence(10),
				UserID:    commenter.ID,
				PostID:    post.ID,
				CreatedAt: post.CreatedAt.Add(time.Duration(i+1) * time.Hour),
			}
			if err := db.Create(comment).Error; err != nil {
				return fmt.Errorf("seed comment: %w", err)
			}
		}

		for _, user := range users {
			if r.Float64() >= opts.LikeChance {
				continue
			}
			like := &models.Like{UserID: user.ID, PostID: post.ID}
			if err := db.Create(like).Error; err != nil {
				return fmt.Errorf("seed like: %w", err)
			}
		}
	}

	return nil
}

func randomPastTime(r *rand.Rand, maxDays int) time.Time {
	daysBack := r.Intn(maxDays)
	hoursBack := r.Intn(24)
	minsBack := r.Intn(60)
	return time.Now().UTC().
		Add(-time.Duration(daysBack)*24*time.Hour -
			time.Duration(hoursBack)*time.Hour -
			time.Duration(minsBack)*time.Minute)
}
