package services

import (
	"context"
	"strings"
	"time"

	"diskusi-bisnis/models"
	"diskusi-bisnis/repositories"
)

type AnswerService interface {
	CreateAnswer(ctx context.Context, actor models.Actor, req models.CreateAnswerRequest) (*models.Answer, error)
	UpdateAnswer(ctx context.Context, actor models.Actor, id uint, content string) (*models.Answer, error)
	DeleteAnswer(ctx context.Context, actor models.Actor, id uint) error
	AcceptAnswer(ctx context.Context, actor models.Actor, id uint) (*models.Answer, error)
}

type answerService struct {
	tx        Transactor
	answers   repositories.AnswerRepository
	questions repositories.QuestionRepository
	comments  repositories.CommentRepository
	votes     repositories.VoteRepository
	users     repositories.UserRepository
	notifier  Notifier
	now       func() time.Time
}

func NewAnswerService(
	tx Transactor,
	answers repositories.AnswerRepository,
	questions repositories.QuestionRepository,
	comments repositories.CommentRepository,
	votes repositories.VoteRepository,
	users repositories.UserRepository,
	notifier Notifier,
) AnswerService {
	return &answerService{
		tx:        tx,
		answers:   answers,
		questions: questions,
		comments:  comments,
		votes:     votes,
		users:     users,
		notifier:  notifier,
		now:       time.Now,
	}
}

func (s *answerService) CreateAnswer(ctx context.Context, actor models.Actor, req models.CreateAnswerRequest) (*models.Answer, error) {
	content := strings.TrimSpace(req.Content)
	if req.QuestionID == 0 || content == "" {
		return nil, models.NewValidationError("Question ID and content are required")
	}

	var question *models.Question
	answer := &models.Answer{Content: content, QuestionID: req.QuestionID, AuthorID: actor.ID}
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		question, err = s.questions.GetByID(ctx, req.QuestionID)
		if err != nil {
			return err
		}
		if question.IsClosed {
			return models.NewConflictError("This question is closed")
		}
		if err := s.answers.Create(ctx, answer); err != nil {
			return err
		}
		return s.questions.AdjustAnswersCount(ctx, question.ID, 1)
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Notify(ctx, NotificationEvent{
		Type:      models.NotificationAnswer,
		ActorID:   actor.ID,
		Recipient: question.AuthorID,
		Target: models.TargetInfo{
			Target:        models.Target{Kind: models.TargetAnswer, ID: answer.ID},
			AuthorID:      question.AuthorID,
			QuestionID:    question.ID,
			QuestionTitle: question.Title,
		},
	})
	return answer, nil
}

func (s *answerService) UpdateAnswer(ctx context.Context, actor models.Actor, id uint, content string) (*models.Answer, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, models.NewValidationError("Content is required")
	}

	answer, err := s.answers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(actor, answer.AuthorID, "You can only edit your own answers"); err != nil {
		return nil, err
	}
	if err := s.answers.Update(ctx, id, map[string]interface{}{"content": content}); err != nil {
		return nil, err
	}
	return s.answers.GetByID(ctx, id)
}

// DeleteAnswer removes the answer with its comments and votes and keeps the
// parent question's counters in step.
func (s *answerService) DeleteAnswer(ctx context.Context, actor models.Actor, id uint) error {
	return s.tx.RunInTx(ctx, func(ctx context.Context) error {
		answer, err := s.answers.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := requireOwner(actor, answer.AuthorID, "You can only delete your own answers"); err != nil {
			return err
		}

		if err := s.comments.DeleteForTargets(ctx, models.TargetAnswer, []uint{id}); err != nil {
			return err
		}
		if err := s.votes.DeleteForTargets(ctx, models.TargetAnswer, []uint{id}); err != nil {
			return err
		}
		if err := s.answers.Delete(ctx, id); err != nil {
			return err
		}
		if err := s.questions.AdjustAnswersCount(ctx, answer.QuestionID, -1); err != nil {
			return err
		}
		if answer.IsAccepted {
			return s.questions.SetHasAcceptedAnswer(ctx, answer.QuestionID, false)
		}
		return nil
	})
}

// AcceptAnswer makes id the single accepted answer of its question. The new
// accepted author gains the acceptance bonus and a previously accepted author
// loses it. Accepting the current accepted answer again changes nothing.
func (s *answerService) AcceptAnswer(ctx context.Context, actor models.Actor, id uint) (*models.Answer, error) {
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		answer, err := s.answers.GetByID(ctx, id)
		if err != nil {
			return err
		}
		question, err := s.questions.GetByID(ctx, answer.QuestionID)
		if err != nil {
			return err
		}
		if question.AuthorID != actor.ID {
			return models.NewForbiddenError("Only the question author can accept an answer")
		}
		if answer.IsAccepted {
			return nil
		}

		previous, err := s.answers.GetAccepted(ctx, question.ID)
		if err != nil {
			return err
		}
		if err := s.answers.ClearAccepted(ctx, question.ID); err != nil {
			return err
		}
		if err := s.answers.MarkAccepted(ctx, answer.ID, s.now()); err != nil {
			return err
		}
		if err := s.questions.SetHasAcceptedAnswer(ctx, question.ID, true); err != nil {
			return err
		}
		if err := s.users.AdjustReputation(ctx, answer.AuthorID, AcceptedAnswerReputation); err != nil {
			return err
		}
		if previous != nil {
			return s.users.AdjustReputation(ctx, previous.AuthorID, -AcceptedAnswerReputation)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.answers.GetByID(ctx, id)
}
