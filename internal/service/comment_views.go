package service

import "time"

// AuthorInfo is the compact author projection embedded in comment views.
type AuthorInfo struct {
	ID       uint    `json:"id"`
	Username string  `json:"username"`
	FullName string  `json:"full_name"`
	Avatar   *string `json:"avatar"`
}

// CommentView is the read projection of a single comment.
type CommentView struct {
	ID           uint       `json:"id"`
	Content      string     `json:"content"`
	AuthorID     uint       `json:"author_id"`
	AuthorInfo   AuthorInfo `json:"author_info"`
	ParentID     *uint      `json:"parent_id"`
	IsActive     bool       `json:"is_active"`
	RepliesCount int64      `json:"replies_count"`
	IsReply      bool       `json:"is_reply"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// CommentDetailView wraps CommentView with the comment's active direct
// replies. It composes the base view rather than extending it so the two
// projections cannot drift apart.
type CommentDetailView struct {
	CommentView
	Replies []CommentView `json:"replies"`
}
