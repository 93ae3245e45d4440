// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// PostStatus is the publication state of a post.
type PostStatus string

const (
	PostStatusDraft     PostStatus = "draft"
	PostStatusPublished PostStatus = "published"
)

// Post represents a blog post in the Quill application.
// Comments may only be attached to published posts.
type Post struct {
	ID      uint       `gorm:"primaryKey" json:"id"`
	Title   string     `gorm:"not null" json:"title"`
	Content string     `gorm:"type:text;not null" json:"content"`
	Status  PostStatus `gorm:"type:varchar(16);not null;default:draft;index" json:"status"`
	UserID  uint       `gorm:"not null;index" json:"user_id"`
	User    User       `gorm:"foreignKey:UserID" json:"user,omitempty"`
	// CommentsCount is not persisted; computed at query time
	CommentsCount int            `gorm:"-" json:"comments_count"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// IsPublished reports whether the post is visible to readers.
func (p *Post) IsPublished() bool {
	return p.Status == PostStatusPublished
}
