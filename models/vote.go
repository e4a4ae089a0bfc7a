package models

import "time"

type VoteType string

const (
	VoteUp   VoteType = "upvote"
	VoteDown VoteType = "downvote"
)

func (v VoteType) Valid() bool {
	return v == VoteUp || v == VoteDown
}

// Vote is unique per (user, votable).
type Vote struct {
	ID          uint       `json:"id" gorm:"primarykey"`
	UserID      uint       `json:"user_id" gorm:"not null;uniqueIndex:idx_vote_owner"`
	VotableType TargetKind `json:"votable_type" gorm:"type:varchar(16);not null;uniqueIndex:idx_vote_owner"`
	VotableID   uint       `json:"votable_id" gorm:"not null;uniqueIndex:idx_vote_owner"`
	VoteType    VoteType   `json:"vote_type" gorm:"type:varchar(16);not null"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (v Vote) Target() Target {
	return Target{Kind: v.VotableType, ID: v.VotableID}
}

// VoteResult is the outcome of casting a vote.
type VoteResult string

const (
	VoteCreated VoteResult = "created"
	VoteUpdated VoteResult = "updated"
	VoteRemoved VoteResult = "removed"
)

type VoteOutcome struct {
	Result   VoteResult `json:"result"`
	VoteID   uint       `json:"vote_id,omitempty"`
	VoteType VoteType   `json:"vote_type,omitempty"`
}
