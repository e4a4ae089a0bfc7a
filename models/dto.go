package models

type RegisterRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	DisplayName string `json:"displayName" validate:"required,min=2,max=100"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type CreateQuestionRequest struct {
	Title   string   `json:"title" validate:"required,min=5,max=255"`
	Content string   `json:"content" validate:"required,min=10"`
	Tags    []string `json:"tags" validate:"required,min=1,max=3,dive,required,max=50"`
}

// UpdateQuestionRequest leaves fields untouched when they are nil.
type UpdateQuestionRequest struct {
	Title   *string  `json:"title" validate:"omitempty,min=5,max=255"`
	Content *string  `json:"content" validate:"omitempty,min=10"`
	Tags    []string `json:"tags" validate:"omitempty,min=1,max=3,dive,required,max=50"`
}

type QuestionListParams struct {
	Sort     QuestionSort `form:"sort"`
	Tag      string       `form:"tag"`
	Search   string       `form:"search"`
	Page     int          `form:"page"`
	Limit    int          `form:"limit"`
	AuthorID uint         `form:"-"`
}

// Normalize applies the listing defaults: newest first, page 1, 20 per page.
func (p *QuestionListParams) Normalize() {
	switch p.Sort {
	case SortNewest, SortPopular, SortUnanswered:
	default:
		p.Sort = SortNewest
	}
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultQuestionLimit
	}
	if p.Limit > MaxQuestionLimit {
		p.Limit = MaxQuestionLimit
	}
}

func (p QuestionListParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

type CreateAnswerRequest struct {
	QuestionID uint   `json:"questionId" validate:"required"`
	Content    string `json:"content" validate:"required,min=10"`
}

type UpdateContentRequest struct {
	Content string `json:"content" validate:"required"`
}

type CreateCommentRequest struct {
	CommentableType string `json:"commentableType" validate:"required,oneof=question answer"`
	CommentableID   uint   `json:"commentableId" validate:"required"`
	Content         string `json:"content" validate:"required,max=1000"`
}

type CastVoteRequest struct {
	VotableType string `json:"votableType" validate:"required,oneof=question answer"`
	VotableID   uint   `json:"votableId" validate:"required"`
	VoteType    string `json:"voteType" validate:"required,oneof=upvote downvote"`
}

type UpdateProfileRequest struct {
	DisplayName *string `json:"displayName" validate:"omitempty,min=2,max=100"`
	Bio         *string `json:"bio" validate:"omitempty,max=500"`
	AvatarURL   *string `json:"avatarUrl" validate:"omitempty,url"`
}

type UserListParams struct {
	Sort  string `form:"sort"`
	Limit int    `form:"limit"`
}

type TagRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=50"`
	Description string `json:"description" validate:"max=500"`
}
