// Command main runs the database seeder for Loopline.
package main

import (
	"flag"
	"log"

	"loopline/internal/config"
	"loopline/internal/database"
	"loopline/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 8, "Number of users to create")
	postsPerUser := flag.Int("posts-per-user", 4, "Number of posts per user")
	commentsPerPost := flag.Int("comments-per-post", 3, "Number of comments per post")
	likeChance := flag.Float64("like-chance", 0.35, "Probability a user likes a given post")
	password := flag.String("password", "loopline-demo", "Password for all seeded users")
	flag.Parse()

	log.Println("Database Seeder")
	log.Printf("Target: %d users, %d posts/user, %d comments/post\n",
		*numUsers, *postsPerUser, *commentsPerPost)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	opts := seed.Options{
		Users:           *numUsers,
		PostsPerUser:    *postsPerUser,
		CommentsPerPost: *commentsPerPost,
		LikeChance:      *likeChance,
		Password:        *password,
	}
	if err := seed.Generate(db, opts); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Done. All seeded users share the configured password.")
}
