package models

import (
	"math"
	"time"
)

type Question struct {
	ID                uint      `json:"id" gorm:"primarykey"`
	Title             string    `json:"title" gorm:"not null"`
	Content           string    `json:"content" gorm:"type:text;not null"`
	AuthorID          uint      `json:"author_id" gorm:"not null;index"`
	Author            *User     `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	UpvotesCount      int       `json:"upvotes_count" gorm:"not null;default:0"`
	DownvotesCount    int       `json:"downvotes_count" gorm:"not null;default:0"`
	ViewsCount        int       `json:"views_count" gorm:"not null;default:0"`
	AnswersCount      int       `json:"answers_count" gorm:"not null;default:0"`
	HasAcceptedAnswer bool      `json:"has_accepted_answer" gorm:"not null;default:false"`
	IsClosed          bool      `json:"is_closed" gorm:"not null;default:false"`
	Tags              []Tag     `json:"tags" gorm:"many2many:question_tags;"`
	Answers           []Answer  `json:"answers,omitempty" gorm:"foreignKey:QuestionID"`
	Comments          []Comment `json:"comments,omitempty" gorm:"-"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// QuestionTag links a question to one of its tags.
type QuestionTag struct {
	QuestionID uint `gorm:"primaryKey"`
	TagID      uint `gorm:"primaryKey"`
}

func (QuestionTag) TableName() string { return "question_tags" }

type QuestionSort string

const (
	SortNewest     QuestionSort = "newest"
	SortPopular    QuestionSort = "popular"
	SortUnanswered QuestionSort = "unanswered"
)

// QuestionSummary is a question row in listings, joined with author details.
type QuestionSummary struct {
	ID                uint      `json:"id"`
	Title             string    `json:"title"`
	Content           string    `json:"content"`
	AuthorID          uint      `json:"author_id"`
	UpvotesCount      int       `json:"upvotes_count"`
	DownvotesCount    int       `json:"downvotes_count"`
	ViewsCount        int       `json:"views_count"`
	AnswersCount      int       `json:"answers_count"`
	HasAcceptedAnswer bool      `json:"has_accepted_answer"`
	IsClosed          bool      `json:"is_closed"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
	AuthorName        string    `json:"author_name"`
	AuthorAvatar      string    `json:"author_avatar"`
	AuthorReputation  int       `json:"author_reputation"`
	Tags              []Tag     `json:"tags" gorm:"-"`
}

// Pagination describes one page of a listing.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

const (
	DefaultPage          = 1
	DefaultQuestionLimit = 20
	MaxQuestionLimit     = 100
)

func NewPagination(page, limit int, total int64) Pagination {
	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	return Pagination{Page: page, Limit: limit, Total: total, TotalPages: totalPages}
}

type QuestionPage struct {
	Questions  []QuestionSummary `json:"questions"`
	Pagination Pagination        `json:"pagination"`
}
