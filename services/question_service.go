package services

import (
	"context"
	"strings"

	"diskusi-bisnis/cache"
	"diskusi-bisnis/helper"
	"diskusi-bisnis/models"
	"diskusi-bisnis/repositories"
)

const (
	minQuestionTags = 1
	maxQuestionTags = 3
)

type QuestionService interface {
	CreateQuestion(ctx context.Context, actor models.Actor, req models.CreateQuestionRequest) (*models.Question, error)
	GetQuestions(ctx context.Context, params models.QuestionListParams) (*models.QuestionPage, error)
	GetQuestion(ctx context.Context, id uint) (*models.Question, error)
	UpdateQuestion(ctx context.Context, actor models.Actor, id uint, req models.UpdateQuestionRequest) (*models.Question, error)
	DeleteQuestion(ctx context.Context, actor models.Actor, id uint) error
	IncrementViews(ctx context.Context, id uint) error
	CloseQuestion(ctx context.Context, actor models.Actor, id uint) error
}

type questionService struct {
	tx        Transactor
	questions repositories.QuestionRepository
	answers   repositories.AnswerRepository
	comments  repositories.CommentRepository
	votes     repositories.VoteRepository
	tags      repositories.TagRepository
	tagCache  cache.TagCache
}

func NewQuestionService(
	tx Transactor,
	questions repositories.QuestionRepository,
	answers repositories.AnswerRepository,
	comments repositories.CommentRepository,
	votes repositories.VoteRepository,
	tags repositories.TagRepository,
	tagCache cache.TagCache,
) QuestionService {
	return &questionService{
		tx:        tx,
		questions: questions,
		answers:   answers,
		comments:  comments,
		votes:     votes,
		tags:      tags,
		tagCache:  tagCache,
	}
}

type tagName struct {
	name string
	slug string
}

// normalizeTags case-folds, slugifies and de-duplicates tag names, then
// enforces the 1 to 3 tag rule.
func normalizeTags(raw []string) ([]tagName, error) {
	seen := make(map[string]bool, len(raw))
	out := make([]tagName, 0, len(raw))
	for _, r := range raw {
		name := helper.NormalizeTagName(r)
		slug := helper.Slugify(name)
		if slug == "" {
			continue
		}
		if seen[slug] {
			continue
		}
		seen[slug] = true
		out = append(out, tagName{name: name, slug: slug})
	}
	if len(out) < minQuestionTags || len(out) > maxQuestionTags {
		return nil, models.NewValidationError("A question needs between %d and %d tags", minQuestionTags, maxQuestionTags)
	}
	return out, nil
}

func (s *questionService) CreateQuestion(ctx context.Context, actor models.Actor, req models.CreateQuestionRequest) (*models.Question, error) {
	title := strings.TrimSpace(req.Title)
	content := strings.TrimSpace(req.Content)
	if title == "" || content == "" {
		return nil, models.NewValidationError("Title, content, and tags are required")
	}
	tags, err := normalizeTags(req.Tags)
	if err != nil {
		return nil, err
	}

	question := &models.Question{Title: title, Content: content, AuthorID: actor.ID}
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.questions.Create(ctx, question); err != nil {
			return err
		}
		return s.attachTags(ctx, actor, question.ID, tags)
	})
	if err != nil {
		return nil, err
	}

	s.tagCache.Invalidate(ctx)
	return s.GetQuestion(ctx, question.ID)
}

func (s *questionService) attachTags(ctx context.Context, actor models.Actor, questionID uint, tags []tagName) error {
	createdBy := actor.ID
	ids := make([]uint, 0, len(tags))
	for _, t := range tags {
		tag, err := s.tags.Acquire(ctx, t.name, t.slug, &createdBy)
		if err != nil {
			return err
		}
		ids = append(ids, tag.ID)
	}
	return s.questions.AttachTags(ctx, questionID, ids)
}

func (s *questionService) GetQuestions(ctx context.Context, params models.QuestionListParams) (*models.QuestionPage, error) {
	params.Normalize()

	rows, total, err := s.questions.List(ctx, params)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, len(rows))
	for i := range rows {
		ids[i] = rows[i].ID
	}
	tags, err := s.questions.TagsFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].Tags = tags[rows[i].ID]
		if rows[i].Tags == nil {
			rows[i].Tags = []models.Tag{}
		}
	}
	if rows == nil {
		rows = []models.QuestionSummary{}
	}

	return &models.QuestionPage{
		Questions:  rows,
		Pagination: models.NewPagination(params.Page, params.Limit, total),
	}, nil
}

// GetQuestion returns the question with its answers and the comments on both.
func (s *questionService) GetQuestion(ctx context.Context, id uint) (*models.Question, error) {
	question, err := s.questions.GetDetail(ctx, id)
	if err != nil {
		return nil, err
	}

	question.Comments, err = s.comments.ListForTargets(ctx, models.TargetQuestion, []uint{question.ID})
	if err != nil {
		return nil, err
	}

	answerIDs := make([]uint, len(question.Answers))
	for i, a := range question.Answers {
		answerIDs[i] = a.ID
	}
	answerComments, err := s.comments.ListForTargets(ctx, models.TargetAnswer, answerIDs)
	if err != nil {
		return nil, err
	}
	byAnswer := make(map[uint][]models.Comment, len(answerIDs))
	for _, c := range answerComments {
		byAnswer[c.CommentableID] = append(byAnswer[c.CommentableID], c)
	}
	for i := range question.Answers {
		question.Answers[i].Comments = byAnswer[question.Answers[i].ID]
	}
	return question, nil
}

func (s *questionService) UpdateQuestion(ctx context.Context, actor models.Actor, id uint, req models.UpdateQuestionRequest) (*models.Question, error) {
	var newTags []tagName
	if req.Tags != nil {
		var err error
		if newTags, err = normalizeTags(req.Tags); err != nil {
			return nil, err
		}
	}

	fields := map[string]interface{}{}
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, models.NewValidationError("Title cannot be empty")
		}
		fields["title"] = title
	}
	if req.Content != nil {
		content := strings.TrimSpace(*req.Content)
		if content == "" {
			return nil, models.NewValidationError("Content cannot be empty")
		}
		fields["content"] = content
	}

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		question, err := s.questions.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := requireOwner(actor, question.AuthorID, "You can only edit your own questions"); err != nil {
			return err
		}

		if len(fields) > 0 {
			if err := s.questions.Update(ctx, id, fields); err != nil {
				return err
			}
		}
		if newTags == nil {
			return nil
		}

		oldIDs, err := s.questions.TagIDs(ctx, id)
		if err != nil {
			return err
		}
		if err := s.tags.AdjustUsage(ctx, oldIDs, -1); err != nil {
			return err
		}
		if err := s.questions.DetachTags(ctx, id); err != nil {
			return err
		}
		return s.attachTags(ctx, actor, id, newTags)
	})
	if err != nil {
		return nil, err
	}

	if newTags != nil {
		s.tagCache.Invalidate(ctx)
	}
	return s.GetQuestion(ctx, id)
}

// DeleteQuestion removes the question and everything hanging off it in one
// transaction: answers, comments and votes on both, tag links and usage.
func (s *questionService) DeleteQuestion(ctx context.Context, actor models.Actor, id uint) error {
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		question, err := s.questions.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := requireOwner(actor, question.AuthorID, "You can only delete your own questions"); err != nil {
			return err
		}

		answerIDs, err := s.answers.IDsByQuestion(ctx, id)
		if err != nil {
			return err
		}
		if err := s.comments.DeleteForTargets(ctx, models.TargetQuestion, []uint{id}); err != nil {
			return err
		}
		if err := s.comments.DeleteForTargets(ctx, models.TargetAnswer, answerIDs); err != nil {
			return err
		}
		if err := s.votes.DeleteForTargets(ctx, models.TargetQuestion, []uint{id}); err != nil {
			return err
		}
		if err := s.votes.DeleteForTargets(ctx, models.TargetAnswer, answerIDs); err != nil {
			return err
		}
		if err := s.answers.DeleteByQuestion(ctx, id); err != nil {
			return err
		}

		tagIDs, err := s.questions.TagIDs(ctx, id)
		if err != nil {
			return err
		}
		if err := s.tags.AdjustUsage(ctx, tagIDs, -1); err != nil {
			return err
		}
		if err := s.questions.DetachTags(ctx, id); err != nil {
			return err
		}
		return s.questions.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	s.tagCache.Invalidate(ctx)
	return nil
}

func (s *questionService) IncrementViews(ctx context.Context, id uint) error {
	return s.questions.IncrementViews(ctx, id)
}

func (s *questionService) CloseQuestion(ctx context.Context, actor models.Actor, id uint) error {
	question, err := s.questions.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := requireOwner(actor, question.AuthorID, "You can only close your own questions"); err != nil {
		return err
	}
	return s.questions.Close(ctx, id)
}
