package models

import "time"

type Comment struct {
	ID              uint       `json:"id" gorm:"primarykey"`
	Content         string     `json:"content" gorm:"type:text;not null"`
	AuthorID        uint       `json:"author_id" gorm:"not null;index"`
	Author          *User      `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	CommentableType TargetKind `json:"commentable_type" gorm:"type:varchar(16);not null;index:idx_comment_target"`
	CommentableID   uint       `json:"commentable_id" gorm:"not null;index:idx_comment_target"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func (c Comment) Target() Target {
	return Target{Kind: c.CommentableType, ID: c.CommentableID}
}
