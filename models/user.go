package models

import "time"

type Role string

const (
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
)

type User struct {
	ID               uint      `json:"id" gorm:"primarykey"`
	Email            string    `json:"email,omitempty" gorm:"uniqueIndex;not null"`
	Password         string    `json:"-" gorm:"not null"`
	DisplayName      string    `json:"display_name" gorm:"not null"`
	Bio              string    `json:"bio,omitempty"`
	AvatarURL        string    `json:"avatar_url,omitempty"`
	ReputationPoints int       `json:"reputation_points" gorm:"not null;default:0"`
	Role             Role      `json:"role,omitempty" gorm:"type:varchar(16);not null;default:'member'"`
	IsBanned         bool      `json:"is_banned,omitempty" gorm:"not null;default:false"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Actor is the authenticated caller of a service operation.
type Actor struct {
	ID   uint
	Role Role
}

func (a Actor) IsAdmin() bool { return a.Role == RoleAdmin }

// CanModify reports whether the actor may edit or delete content owned by authorID.
func (a Actor) CanModify(authorID uint) bool {
	return a.ID == authorID || a.IsAdmin()
}

// UserSummary is a row of the public user directory.
type UserSummary struct {
	ID               uint      `json:"id"`
	DisplayName      string    `json:"display_name"`
	AvatarURL        string    `json:"avatar_url"`
	Bio              string    `json:"bio"`
	ReputationPoints int       `json:"reputation_points"`
	Role             Role      `json:"role"`
	QuestionsCount   int64     `json:"questions_count"`
	AnswersCount     int64     `json:"answers_count"`
	CreatedAt        time.Time `json:"created_at"`
}
