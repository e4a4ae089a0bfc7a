package models

import "fmt"

// TargetKind is the kind of content a vote or comment points at.
type TargetKind string

const (
	TargetQuestion TargetKind = "question"
	TargetAnswer   TargetKind = "answer"
)

// ParseTargetKind accepts only the two votable/commentable kinds.
func ParseTargetKind(s string) (TargetKind, error) {
	switch TargetKind(s) {
	case TargetQuestion, TargetAnswer:
		return TargetKind(s), nil
	}
	return "", NewValidationError("type must be question or answer")
}

// Target identifies a question or an answer.
type Target struct {
	Kind TargetKind
	ID   uint
}

func (t Target) String() string {
	return fmt.Sprintf("%s %d", t.Kind, t.ID)
}

// Label is the Indonesian noun used in notification titles.
func (k TargetKind) Label() string {
	if k == TargetAnswer {
		return "jawaban"
	}
	return "pertanyaan"
}

// TargetInfo is what the services need to know about a target's owner.
type TargetInfo struct {
	Target
	AuthorID      uint
	QuestionID    uint
	QuestionTitle string
}
