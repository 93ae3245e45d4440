package service

import (
	"context"

	"quill/internal/models"
	"quill/internal/repository"
)

// PostService implements the minimal post lifecycle the comment layer
// depends on: drafting, publishing, and reading published posts.
type PostService struct {
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
}

type CreatePostInput struct {
	UserID  uint
	Title   string
	Content string
	Publish bool
}

type UpdatePostInput struct {
	UserID  uint
	PostID  uint
	Title   string
	Content string
}

func NewPostService(postRepo repository.PostRepository, commentRepo repository.CommentRepository) *PostService {
	return &PostService{postRepo: postRepo, commentRepo: commentRepo}
}

const maxTitleLen = 200

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if in.Title == "" {
		return nil, models.NewFieldValidationError("title", "Title is required")
	}
	if len(in.Title) > maxTitleLen {
		return nil, models.NewFieldValidationError("title", "Title too long (max 200 characters)")
	}
	if in.Content == "" {
		return nil, models.NewFieldValidationError("content", "Content is required")
	}

	status := models.PostStatusDraft
	if in.Publish {
		status = models.PostStatusPublished
	}

	post := &models.Post{
		Title:   in.Title,
		Content: in.Content,
		Status:  status,
		UserID:  in.UserID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return s.postRepo.GetByID(ctx, post.ID)
}

func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	post, err := s.postRepo.GetByIDCached(ctx, id)
	if err != nil {
		return nil, err
	}
	// CommentsCount is derived, not stored; a count failure degrades to 0.
	if s.commentRepo != nil {
		if n, err := s.commentRepo.CountActiveByPost(ctx, id); err == nil {
			post.CommentsCount = int(n)
		}
	}
	return post, nil
}

func (s *PostService) ListPosts(ctx context.Context, limit, offset int) ([]*models.Post, error) {
	return s.postRepo.ListPublished(ctx, limit, offset)
}

// PublishPost moves an author's draft to the published state.
func (s *PostService) PublishPost(ctx context.Context, userID, postID uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.UserID != userID {
		return nil, models.NewUnauthorizedError("You can only publish your own posts")
	}
	if post.IsPublished() {
		return post, nil
	}

	post.Status = models.PostStatusPublished
	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}
	if post.UserID != in.UserID {
		return nil, models.NewUnauthorizedError("You can only update your own posts")
	}

	if in.Title != "" {
		if len(in.Title) > maxTitleLen {
			return nil, models.NewFieldValidationError("title", "Title too long (max 200 characters)")
		}
		post.Title = in.Title
	}
	if in.Content != "" {
		post.Content = in.Content
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}
