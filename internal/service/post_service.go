package service

import (
	"context"

	"loopline/internal/models"
	"loopline/internal/repository"
)

const (
	maxTitleLen   = 300
	maxContentLen = 50000
)

// PostService implements the post write flows. Every mutation of an existing
// post fetches the stored row first and applies the ownership predicate; a
// failed check surfaces as ErrNotOwner, which handlers collapse to the same
// response as a missing post.
type PostService struct {
	postRepo repository.PostRepository
}

type CreatePostInput struct {
	UserID  uint
	Title   string
	Content string
}

type UpdatePostInput struct {
	ActorUsername string
	PostID        uint
	Title         string
	Content       string
}

type DeletePostInput struct {
	ActorUsername string
	PostID        uint
}

// NewPostService creates a PostService.
func NewPostService(postRepo repository.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

func validatePostInput(title, content string) error {
	if title == "" {
		return models.NewValidationError("Title is required")
	}
	if len(title) > maxTitleLen {
		return models.NewValidationError("Title too long (max 300 characters)")
	}
	if content == "" {
		return models.NewValidationError("Content is required")
	}
	if len(content) > maxContentLen {
		return models.NewValidationError("Content too long (max 50000 characters)")
	}
	return nil
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if err := validatePostInput(in.Title, in.Content); err != nil {
		return nil, err
	}

	post := &models.Post{
		Title:   in.Title,
		Content: NormalizeContent(in.Content),
		UserID:  in.UserID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return s.postRepo.GetByID(ctx, post.ID, in.UserID)
}

// UpdatePost edits a post's title and content. Only the owner may update;
// anyone else gets the not-owner error and the stored post stays untouched.
func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, in.PostID, 0)
	if err != nil {
		return nil, err
	}
	if !Owns(post.User.Username, in.ActorUsername) {
		return nil, models.NewNotOwnerError("post")
	}
	if err := validatePostInput(in.Title, in.Content); err != nil {
		return nil, err
	}

	post.Title = in.Title
	post.Content = NormalizeContent(in.Content)
	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	return s.postRepo.GetByID(ctx, post.ID, 0)
}

// DeletePost removes a post and, through the store's cascade, all of its
// likes and comments. Owner only.
func (s *PostService) DeletePost(ctx context.Context, in DeletePostInput) error {
	post, err := s.postRepo.GetByID(ctx, in.PostID, 0)
	if err != nil {
		return err
	}
	if !Owns(post.User.Username, in.ActorUsername) {
		return models.NewNotOwnerError("post")
	}
	return s.postRepo.Delete(ctx, in.PostID)
}
