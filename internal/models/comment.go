// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// Comment represents a comment on a post. A comment may optionally
// reply to another comment on the same post; nesting is one level deep.
// Comments are soft-deleted by clearing IsActive so threads keep their
// shape after removal.
type Comment struct {
	ID       uint     `gorm:"primaryKey" json:"id"`
	Content  string   `gorm:"type:text;not null" json:"content"`
	UserID   uint     `gorm:"not null;index" json:"user_id"`
	User     User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	PostID   uint     `gorm:"not null;index" json:"post_id"`
	Post     Post     `gorm:"foreignKey:PostID" json:"post,omitempty"`
	ParentID *uint    `gorm:"index" json:"parent_id"`
	Parent   *Comment `gorm:"foreignKey:ParentID" json:"parent,omitempty"`
	// Replies holds active direct children when preloaded; it is not
	// populated on plain lookups.
	Replies   []Comment      `gorm:"foreignKey:ParentID" json:"replies,omitempty"`
	IsActive  bool           `gorm:"default:true;index" json:"is_active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// IsReply reports whether the comment is a child of another comment.
func (c *Comment) IsReply() bool {
	return c.ParentID != nil
}
