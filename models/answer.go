package models

import "time"

type Answer struct {
	ID             uint       `json:"id" gorm:"primarykey"`
	Content        string     `json:"content" gorm:"type:text;not null"`
	QuestionID     uint       `json:"question_id" gorm:"not null;index"`
	AuthorID       uint       `json:"author_id" gorm:"not null;index"`
	Author         *User      `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	UpvotesCount   int        `json:"upvotes_count" gorm:"not null;default:0"`
	DownvotesCount int        `json:"downvotes_count" gorm:"not null;default:0"`
	IsAccepted     bool       `json:"is_accepted" gorm:"not null;default:false"`
	AcceptedAt     *time.Time `json:"accepted_at"`
	Comments       []Comment  `json:"comments,omitempty" gorm:"-"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// AnswerWithQuestion is an answer listed on its author's profile.
type AnswerWithQuestion struct {
	ID             uint      `json:"id"`
	Content        string    `json:"content"`
	QuestionID     uint      `json:"question_id"`
	QuestionTitle  string    `json:"question_title"`
	UpvotesCount   int       `json:"upvotes_count"`
	DownvotesCount int       `json:"downvotes_count"`
	IsAccepted     bool      `json:"is_accepted"`
	CreatedAt      time.Time `json:"created_at"`
}
