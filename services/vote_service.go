package services

import (
	"context"

	"diskusi-bisnis/models"
	"diskusi-bisnis/repositories"
)

type VoteService interface {
	CastVote(ctx context.Context, actor models.Actor, target models.Target, voteType models.VoteType) (*models.VoteOutcome, error)
	RemoveVote(ctx context.Context, actor models.Actor, voteID uint) error
}

type voteService struct {
	tx       Transactor
	votes    repositories.VoteRepository
	targets  repositories.TargetRepository
	users    repositories.UserRepository
	notifier Notifier
}

func NewVoteService(
	tx Transactor,
	votes repositories.VoteRepository,
	targets repositories.TargetRepository,
	users repositories.UserRepository,
	notifier Notifier,
) VoteService {
	return &voteService{tx: tx, votes: votes, targets: targets, users: users, notifier: notifier}
}

// CastVote applies one step of the vote state machine. The vote row, the
// target's counters and the author's reputation change in one transaction.
func (s *voteService) CastVote(ctx context.Context, actor models.Actor, target models.Target, voteType models.VoteType) (*models.VoteOutcome, error) {
	if !voteType.Valid() {
		return nil, models.NewValidationError("voteType must be upvote or downvote")
	}

	var (
		info    *models.TargetInfo
		plan    votePlan
		outcome models.VoteOutcome
	)
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		info, err = s.targets.Lookup(ctx, target)
		if err != nil {
			return err
		}

		existing, err := s.votes.Find(ctx, actor.ID, target)
		if err != nil {
			return err
		}
		var current *models.VoteType
		if existing != nil {
			current = &existing.VoteType
		}

		plan = planVote(current, voteType, target.Kind)
		outcome = models.VoteOutcome{Result: plan.Result, VoteType: plan.NewType}

		switch plan.Result {
		case models.VoteCreated:
			vote := &models.Vote{UserID: actor.ID, VotableType: target.Kind, VotableID: target.ID, VoteType: voteType}
			if err := s.votes.Create(ctx, vote); err != nil {
				return err
			}
			outcome.VoteID = vote.ID
		case models.VoteUpdated:
			if err := s.votes.UpdateType(ctx, existing.ID, plan.NewType); err != nil {
				return err
			}
			outcome.VoteID = existing.ID
		case models.VoteRemoved:
			if err := s.votes.Delete(ctx, existing.ID); err != nil {
				return err
			}
		}

		if err := s.targets.AdjustVotes(ctx, target, plan.UpDelta, plan.DownDelta); err != nil {
			return err
		}
		return s.users.AdjustReputation(ctx, info.AuthorID, plan.Reputation)
	})
	if err != nil {
		return nil, err
	}

	if plan.Notify {
		s.notifier.Notify(ctx, NotificationEvent{
			Type:      models.NotificationVote,
			ActorID:   actor.ID,
			Recipient: info.AuthorID,
			Target:    *info,
		})
	}
	return &outcome, nil
}

// RemoveVote deletes the caller's own vote and reverses its effects.
func (s *voteService) RemoveVote(ctx context.Context, actor models.Actor, voteID uint) error {
	return s.tx.RunInTx(ctx, func(ctx context.Context) error {
		vote, err := s.votes.GetByID(ctx, voteID)
		if err != nil {
			return err
		}
		if vote.UserID != actor.ID {
			return models.NewForbiddenError("You can only remove your own vote")
		}

		info, err := s.targets.Lookup(ctx, vote.Target())
		if err != nil {
			return err
		}
		plan := reverseVote(vote.VoteType, vote.VotableType)

		if err := s.votes.Delete(ctx, vote.ID); err != nil {
			return err
		}
		if err := s.targets.AdjustVotes(ctx, vote.Target(), plan.UpDelta, plan.DownDelta); err != nil {
			return err
		}
		return s.users.AdjustReputation(ctx, info.AuthorID, plan.Reputation)
	})
}
