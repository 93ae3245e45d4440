package service

import (
	"context"
	"time"

	"quill/internal/models"
	"quill/internal/repository"
)

// UserService implements profile reads and updates.
type UserService struct {
	userRepo    repository.UserRepository
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
}

// ProfileView is the read projection of a user profile. ID and
// timestamps are read-only output; counts are derived at render time.
type ProfileView struct {
	ID            uint      `json:"id"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	FullName      string    `json:"full_name"`
	Bio           string    `json:"bio"`
	Avatar        string    `json:"avatar"`
	IsActive      bool      `json:"is_active"`
	PostsCount    int64     `json:"posts_count"`
	CommentsCount int64     `json:"comments_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func NewUserService(
	userRepo repository.UserRepository,
	postRepo repository.PostRepository,
	commentRepo repository.CommentRepository,
) *UserService {
	return &UserService{
		userRepo:    userRepo,
		postRepo:    postRepo,
		commentRepo: commentRepo,
	}
}

// Profile renders a user's profile with derived post and comment counts.
// Counts fall back to zero when a counting collaborator is missing or
// failing; a profile read never breaks on them.
func (s *UserService) Profile(ctx context.Context, userID uint) (*ProfileView, error) {
	user, err := s.userRepo.GetByIDCached(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.profileView(ctx, user), nil
}

func (s *UserService) profileView(ctx context.Context, user *models.User) *ProfileView {
	var postsCount, commentsCount int64
	if s.postRepo != nil {
		if n, err := s.postRepo.CountByAuthor(ctx, user.ID); err == nil {
			postsCount = n
		}
	}
	if s.commentRepo != nil {
		if n, err := s.commentRepo.CountByAuthor(ctx, user.ID); err == nil {
			commentsCount = n
		}
	}

	return &ProfileView{
		ID:            user.ID,
		Username:      user.Username,
		Email:         user.Email,
		FirstName:     user.FirstName,
		LastName:      user.LastName,
		FullName:      user.FullName(),
		Bio:           user.Bio,
		Avatar:        user.Avatar,
		IsActive:      user.IsActive,
		PostsCount:    postsCount,
		CommentsCount: commentsCount,
		CreatedAt:     user.CreatedAt,
		UpdatedAt:     user.UpdatedAt,
	}
}

const (
	maxNameLen = 50
	maxBioLen  = 500
)

// UpdateProfile applies a whitelist patch to the user's mutable profile
// fields and persists the result.
func (s *UserService) UpdateProfile(ctx context.Context, userID uint, patch models.ProfilePatch) (*ProfileView, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if patch.FirstName != nil {
		if len(*patch.FirstName) > maxNameLen {
			return nil, models.NewFieldValidationError("first_name", "First name too long (max 50 characters)")
		}
		user.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		if len(*patch.LastName) > maxNameLen {
			return nil, models.NewFieldValidationError("last_name", "Last name too long (max 50 characters)")
		}
		user.LastName = *patch.LastName
	}
	if patch.Bio != nil {
		if len(*patch.Bio) > maxBioLen {
			return nil, models.NewFieldValidationError("bio", "Bio too long (max 500 characters)")
		}
		user.Bio = *patch.Bio
	}
	if patch.Avatar != nil {
		user.Avatar = *patch.Avatar
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return s.profileView(ctx, user), nil
}
