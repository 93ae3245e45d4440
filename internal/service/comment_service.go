package service

import (
	"context"

	"quill/internal/models"
	"quill/internal/repository"
)

// CommentService implements comment creation, editing, and read
// projections on top of the comment and post repositories.
type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

type CreateCommentInput struct {
	UserID   uint
	PostID   uint
	ParentID *uint
	Content  string
}

type UpdateCommentInput struct {
	UserID    uint
	CommentID uint
	Content   string
}

type DeleteCommentInput struct {
	UserID    uint
	CommentID uint
}

func NewCommentService(
	commentRepo repository.CommentRepository,
	postRepo repository.PostRepository,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

const maxCommentLen = 10000

// CreateComment validates and stores a new comment. The target post must
// exist and be published; an optional parent must be an active top-level
// comment on the same post (replies nest one level deep).
func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	if in.Content == "" {
		return nil, models.NewValidationError("Content is required")
	}
	if len(in.Content) > maxCommentLen {
		return nil, models.NewValidationError("Comment too long (max 10000 characters)")
	}

	published, err := s.postRepo.ExistsPublished(ctx, in.PostID)
	if err != nil {
		return nil, err
	}
	if !published {
		return nil, models.NewNotFoundError("Post", in.PostID)
	}

	if in.ParentID != nil {
		parent, err := s.commentRepo.GetByID(ctx, *in.ParentID)
		if err != nil {
			return nil, err
		}
		if parent.PostID != in.PostID {
			return nil, models.NewValidationError("Parent comment belongs to a different post")
		}
		if parent.IsReply() {
			return nil, models.NewValidationError("Replies cannot be nested")
		}
		if !parent.IsActive {
			return nil, models.NewValidationError("Cannot reply to a deleted comment")
		}
	}

	comment := &models.Comment{
		Content:  in.Content,
		UserID:   in.UserID,
		PostID:   in.PostID,
		ParentID: in.ParentID,
		IsActive: true,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return s.commentRepo.GetByID(ctx, comment.ID)
}

// ListComments returns the rendered active top-level comments of a
// published post, newest first.
func (s *CommentService) ListComments(ctx context.Context, postID uint) ([]CommentView, error) {
	published, err := s.postRepo.ExistsPublished(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !published {
		return nil, models.NewNotFoundError("Post", postID)
	}

	comments, err := s.commentRepo.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	views := make([]CommentView, 0, len(comments))
	for _, comment := range comments {
		view, err := s.renderComment(ctx, comment)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

// GetCommentDetail renders a single comment together with its active
// replies. A reply's detail view always carries an empty replies list.
func (s *CommentService) GetCommentDetail(ctx context.Context, commentID uint) (*CommentDetailView, error) {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}

	base, err := s.renderComment(ctx, comment)
	if err != nil {
		return nil, err
	}

	detail := &CommentDetailView{
		CommentView: base,
		Replies:     []CommentView{},
	}

	if comment.IsReply() {
		return detail, nil
	}

	replies, err := s.commentRepo.ListReplies(ctx, comment.ID)
	if err != nil {
		return nil, err
	}
	for _, reply := range replies {
		view, err := s.renderComment(ctx, reply)
		if err != nil {
			return nil, err
		}
		detail.Replies = append(detail.Replies, view)
	}

	return detail, nil
}

// UpdateComment changes a comment's content. Only the author may edit.
func (s *CommentService) UpdateComment(ctx context.Context, in UpdateCommentInput) (*models.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, in.CommentID)
	if err != nil {
		return nil, err
	}

	if comment.UserID != in.UserID {
		return nil, models.NewUnauthorizedError("You can only update your own comments")
	}
	if in.Content == "" {
		return nil, models.NewValidationError("Content is required")
	}
	if len(in.Content) > maxCommentLen {
		return nil, models.NewValidationError("Comment too long (max 10000 characters)")
	}

	comment.Content = in.Content
	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}

	return s.commentRepo.GetByID(ctx, comment.ID)
}

// DeleteComment soft-deletes a comment by clearing its active flag.
// Only the author may delete.
func (s *CommentService) DeleteComment(ctx context.Context, in DeleteCommentInput) (*models.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, in.CommentID)
	if err != nil {
		return nil, err
	}

	if comment.UserID != in.UserID {
		return nil, models.NewUnauthorizedError("You can only delete your own comments")
	}

	if err := s.commentRepo.Deactivate(ctx, in.CommentID); err != nil {
		return nil, err
	}

	comment.IsActive = false
	return comment, nil
}

func (s *CommentService) renderComment(ctx context.Context, comment *models.Comment) (CommentView, error) {
	repliesCount, err := s.commentRepo.CountActiveReplies(ctx, comment.ID)
	if err != nil {
		return CommentView{}, err
	}

	var avatar *string
	if comment.User.Avatar != "" {
		avatar = &comment.User.Avatar
	}

	return CommentView{
		ID:       comment.ID,
		Content:  comment.Content,
		AuthorID: comment.UserID,
		AuthorInfo: AuthorInfo{
			ID:       comment.User.ID,
			Username: comment.User.Username,
			FullName: comment.User.FullName(),
			Avatar:   avatar,
		},
		ParentID:     comment.ParentID,
		IsActive:     comment.IsActive,
		RepliesCount: repliesCount,
		IsReply:      comment.IsReply(),
		CreatedAt:    comment.CreatedAt,
		UpdatedAt:    comment.UpdatedAt,
	}, nil
}
