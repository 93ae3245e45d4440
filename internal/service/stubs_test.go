package service

import (
	"context"
	"errors"
	"testing"

	"quill/internal/models"

	"github.com/stretchr/testify/require"
)

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	createFn             func(context.Context, *models.Comment) error
	getByIDFn            func(context.Context, uint) (*models.Comment, error)
	listByPostFn         func(context.Context, uint) ([]*models.Comment, error)
	listRepliesFn        func(context.Context, uint) ([]*models.Comment, error)
	countActiveRepliesFn func(context.Context, uint) (int64, error)
	countActiveByPostFn  func(context.Context, uint) (int64, error)
	countByAuthorFn      func(context.Context, uint) (int64, error)
	updateFn             func(context.Context, *models.Comment) error
	deactivateFn         func(context.Context, uint) error
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error) {
	return s.listByPostFn(ctx, postID)
}
func (s *commentRepoStub) ListReplies(ctx context.Context, parentID uint) ([]*models.Comment, error) {
	return s.listRepliesFn(ctx, parentID)
}
func (s *commentRepoStub) CountActiveReplies(ctx context.Context, parentID uint) (int64, error) {
	return s.countActiveRepliesFn(ctx, parentID)
}
func (s *commentRepoStub) CountActiveByPost(ctx context.Context, postID uint) (int64, error) {
	return s.countActiveByPostFn(ctx, postID)
}
func (s *commentRepoStub) CountByAuthor(ctx context.Context, userID uint) (int64, error) {
	return s.countByAuthorFn(ctx, userID)
}
func (s *commentRepoStub) Update(ctx context.Context, comment *models.Comment) error {
	return s.updateFn(ctx, comment)
}
func (s *commentRepoStub) Deactivate(ctx context.Context, id uint) error {
	return s.deactivateFn(ctx, id)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn:             func(_ context.Context, _ *models.Comment) error { return nil },
		getByIDFn:            func(_ context.Context, id uint) (*models.Comment, error) { return &models.Comment{ID: id}, nil },
		listByPostFn:         func(_ context.Context, _ uint) ([]*models.Comment, error) { return nil, nil },
		listRepliesFn:        func(_ context.Context, _ uint) ([]*models.Comment, error) { return nil, nil },
		countActiveRepliesFn: func(_ context.Context, _ uint) (int64, error) { return 0, nil },
		countActiveByPostFn:  func(_ context.Context, _ uint) (int64, error) { return 0, nil },
		countByAuthorFn:      func(_ context.Context, _ uint) (int64, error) { return 0, nil },
		updateFn:             func(_ context.Context, _ *models.Comment) error { return nil },
		deactivateFn:         func(_ context.Context, _ uint) error { return nil },
	}
}

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	createFn          func(context.Context, *models.Post) error
	getByIDFn         func(context.Context, uint) (*models.Post, error)
	getByIDCachedFn   func(context.Context, uint) (*models.Post, error)
	listPublishedFn   func(context.Context, int, int) ([]*models.Post, error)
	existsPublishedFn func(context.Context, uint) (bool, error)
	updateFn          func(context.Context, *models.Post) error
	countByAuthorFn   func(context.Context, uint) (int64, error)
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) GetByIDCached(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDCachedFn(ctx, id)
}
func (s *postRepoStub) ListPublished(ctx context.Context, limit, offset int) ([]*models.Post, error) {
	return s.listPublishedFn(ctx, limit, offset)
}
func (s *postRepoStub) ExistsPublished(ctx context.Context, id uint) (bool, error) {
	return s.existsPublishedFn(ctx, id)
}
func (s *postRepoStub) Update(ctx context.Context, post *models.Post) error {
	return s.updateFn(ctx, post)
}
func (s *postRepoStub) CountByAuthor(ctx context.Context, userID uint) (int64, error) {
	return s.countByAuthorFn(ctx, userID)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn:          func(_ context.Context, _ *models.Post) error { return nil },
		getByIDFn:         func(_ context.Context, id uint) (*models.Post, error) { return &models.Post{ID: id}, nil },
		getByIDCachedFn:   func(_ context.Context, id uint) (*models.Post, error) { return &models.Post{ID: id}, nil },
		listPublishedFn:   func(_ context.Context, _, _ int) ([]*models.Post, error) { return nil, nil },
		existsPublishedFn: func(_ context.Context, _ uint) (bool, error) { return true, nil },
		updateFn:          func(_ context.Context, _ *models.Post) error { return nil },
		countByAuthorFn:   func(_ context.Context, _ uint) (int64, error) { return 0, nil },
	}
}

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByIDCachedFn func(context.Context, uint) (*models.User, error)
	getByEmailFn    func(context.Context, string) (*models.User, error)
	getByUsernameFn func(context.Context, string) (*models.User, error)
	createFn        func(context.Context, *models.User) error
	updateFn        func(context.Context, *models.User) error
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByIDCached(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDCachedFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:       func(_ context.Context, id uint) (*models.User, error) { return &models.User{ID: id, IsActive: true}, nil },
		getByIDCachedFn: func(_ context.Context, id uint) (*models.User, error) { return &models.User{ID: id, IsActive: true}, nil },
		getByEmailFn:    func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		getByUsernameFn: func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		createFn:        func(_ context.Context, _ *models.User) error { return nil },
		updateFn:        func(_ context.Context, _ *models.User) error { return nil },
	}
}

// assertValidationError asserts that err is an AppError with code VALIDATION_ERROR.
func assertValidationError(t *testing.T, err error) {
	t.Helper()
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %v", err)
	require.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

// assertNotFoundError asserts that err is an AppError with code NOT_FOUND.
func assertNotFoundError(t *testing.T, err error) {
	t.Helper()
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %v", err)
	require.Equal(t, "NOT_FOUND", appErr.Code)
}

// assertUnauthorizedError asserts that err is an AppError with code UNAUTHORIZED.
func assertUnauthorizedError(t *testing.T, err error) {
	t.Helper()
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %v", err)
	require.Equal(t, "UNAUTHORIZED", appErr.Code)
}
