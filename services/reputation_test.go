package services

import (
	"testing"

	"diskusi-bisnis/models"

	"github.com/stretchr/testify/assert"
)

func voteType(v models.VoteType) *models.VoteType { return &v }

func TestPlanVote_Transitions(t *testing.T) {
	tests := []struct {
		name      string
		current   *models.VoteType
		requested models.VoteType
		kind      models.TargetKind
		want      votePlan
	}{
		{
			name: "no vote to upvote on answer", requested: models.VoteUp, kind: models.TargetAnswer,
			want: votePlan{Result: models.VoteCreated, NewType: models.VoteUp, UpDelta: 1, Reputation: 10, Notify: true},
		},
		{
			name: "no vote to upvote on question", requested: models.VoteUp, kind: models.TargetQuestion,
			want: votePlan{Result: models.VoteCreated, NewType: models.VoteUp, UpDelta: 1, Reputation: 5, Notify: true},
		},
		{
			name: "no vote to downvote", requested: models.VoteDown, kind: models.TargetAnswer,
			want: votePlan{Result: models.VoteCreated, NewType: models.VoteDown, DownDelta: 1},
		},
		{
			name: "upvote toggled off", current: voteType(models.VoteUp), requested: models.VoteUp, kind: models.TargetQuestion,
			want: votePlan{Result: models.VoteRemoved, UpDelta: -1, Reputation: -5},
		},
		{
			name: "downvote toggled off", current: voteType(models.VoteDown), requested: models.VoteDown, kind: models.TargetQuestion,
			want: votePlan{Result: models.VoteRemoved, DownDelta: -1},
		},
		{
			name: "upvote switched to downvote", current: voteType(models.VoteUp), requested: models.VoteDown, kind: models.TargetAnswer,
			want: votePlan{Result: models.VoteUpdated, NewType: models.VoteDown, UpDelta: -1, DownDelta: 1, Reputation: -10},
		},
		{
			name: "downvote switched to upvote", current: voteType(models.VoteDown), requested: models.VoteUp, kind: models.TargetAnswer,
			want: votePlan{Result: models.VoteUpdated, NewType: models.VoteUp, UpDelta: 1, DownDelta: -1, Reputation: 10},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, planVote(tt.current, tt.requested, tt.kind))
		})
	}
}

// Any sequence of votes by one user must leave reputation equal to the award
// of the final state, so flipping back and forth cannot farm points.
func TestPlanVote_ReputationIsSymmetric(t *testing.T) {
	sequence := []models.VoteType{
		models.VoteUp, models.VoteDown, models.VoteUp, models.VoteDown, models.VoteDown, models.VoteUp, models.VoteUp,
	}

	var current *models.VoteType
	total, up, down := 0, 0, 0
	for _, v := range sequence {
		p := planVote(current, v, models.TargetAnswer)
		total += p.Reputation
		up += p.UpDelta
		down += p.DownDelta
		if p.NewType == "" {
			current = nil
		} else {
			current = voteType(p.NewType)
		}

		wantRep, wantUp, wantDown := 0, 0, 0
		if current != nil && *current == models.VoteUp {
			wantRep, wantUp = AnswerUpvoteReputation, 1
		}
		if current != nil && *current == models.VoteDown {
			wantDown = 1
		}
		assert.Equal(t, wantRep, total)
		assert.Equal(t, wantUp, up)
		assert.Equal(t, wantDown, down)
	}
}

func TestReverseVote(t *testing.T) {
	assert.Equal(t, votePlan{Result: models.VoteRemoved, UpDelta: -1, Reputation: -5}, reverseVote(models.VoteUp, models.TargetQuestion))
	assert.Equal(t, votePlan{Result: models.VoteRemoved, DownDelta: -1}, reverseVote(models.VoteDown, models.TargetAnswer))
}
