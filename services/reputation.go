package services

import "diskusi-bisnis/models"

// Reputation awards. Removing or reversing an upvote takes back exactly what
// it granted; downvotes never cost the author anything.
const (
	QuestionUpvoteReputation = 5
	AnswerUpvoteReputation   = 10
	AcceptedAnswerReputation = 15
)

func upvoteReputation(kind models.TargetKind) int {
	if kind == models.TargetAnswer {
		return AnswerUpvoteReputation
	}
	return QuestionUpvoteReputation
}

// votePlan is the effect of one castVote call on a (user, target) pair.
type votePlan struct {
	Result     models.VoteResult
	NewType    models.VoteType // empty when the vote is removed
	UpDelta    int
	DownDelta  int
	Reputation int
	Notify     bool
}

// planVote resolves the NoVote/Upvoted/Downvoted state machine. current is nil
// when the user has not voted yet. Voting the same way twice removes the vote.
func planVote(current *models.VoteType, requested models.VoteType, kind models.TargetKind) votePlan {
	award := upvoteReputation(kind)

	if current == nil {
		p := votePlan{Result: models.VoteCreated, NewType: requested}
		if requested == models.VoteUp {
			p.UpDelta = 1
			p.Reputation = award
			p.Notify = true
		} else {
			p.DownDelta = 1
		}
		return p
	}

	if *current == requested {
		p := votePlan{Result: models.VoteRemoved}
		if requested == models.VoteUp {
			p.UpDelta = -1
			p.Reputation = -award
		} else {
			p.DownDelta = -1
		}
		return p
	}

	p := votePlan{Result: models.VoteUpdated, NewType: requested}
	if requested == models.VoteUp {
		p.UpDelta, p.DownDelta = 1, -1
		p.Reputation = award
	} else {
		p.UpDelta, p.DownDelta = -1, 1
		p.Reputation = -award
	}
	return p
}

// reverseVote is the effect of deleting an existing vote row.
func reverseVote(existing models.VoteType, kind models.TargetKind) votePlan {
	return planVote(&existing, existing, kind)
}
