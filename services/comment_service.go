package services

import (
	"context"
	"strings"

	"diskusi-bisnis/models"
	"diskusi-bisnis/repositories"
)

type CommentService interface {
	CreateComment(ctx context.Context, actor models.Actor, req models.CreateCommentRequest) (*models.Comment, error)
	UpdateComment(ctx context.Context, actor models.Actor, id uint, content string) (*models.Comment, error)
	DeleteComment(ctx context.Context, actor models.Actor, id uint) error
}

type commentService struct {
	tx       Transactor
	comments repositories.CommentRepository
	targets  repositories.TargetRepository
	notifier Notifier
}

func NewCommentService(
	tx Transactor,
	comments repositories.CommentRepository,
	targets repositories.TargetRepository,
	notifier Notifier,
) CommentService {
	return &commentService{tx: tx, comments: comments, targets: targets, notifier: notifier}
}

func (s *commentService) CreateComment(ctx context.Context, actor models.Actor, req models.CreateCommentRequest) (*models.Comment, error) {
	kind, err := models.ParseTargetKind(req.CommentableType)
	if err != nil {
		return nil, err
	}
	content := strings.TrimSpace(req.Content)
	if content == "" || req.CommentableID == 0 {
		return nil, models.NewValidationError("Content and target are required")
	}

	target := models.Target{Kind: kind, ID: req.CommentableID}
	comment := &models.Comment{
		Content:         content,
		AuthorID:        actor.ID,
		CommentableType: kind,
		CommentableID:   req.CommentableID,
	}

	var info *models.TargetInfo
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		if info, err = s.targets.Lookup(ctx, target); err != nil {
			return err
		}
		return s.comments.Create(ctx, comment)
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Notify(ctx, NotificationEvent{
		Type:      models.NotificationComment,
		ActorID:   actor.ID,
		Recipient: info.AuthorID,
		Target:    *info,
	})
	return comment, nil
}

func (s *commentService) UpdateComment(ctx context.Context, actor models.Actor, id uint, content string) (*models.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, models.NewValidationError("Content is required")
	}

	comment, err := s.comments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(actor, comment.AuthorID, "You can only edit your own comments"); err != nil {
		return nil, err
	}
	if err := s.comments.Update(ctx, id, content); err != nil {
		return nil, err
	}
	return s.comments.GetByID(ctx, id)
}

func (s *commentService) DeleteComment(ctx context.Context, actor models.Actor, id uint) error {
	comment, err := s.comments.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := requireOwner(actor, comment.AuthorID, "You can only delete your own comments"); err != nil {
		return err
	}
	return s.comments.Delete(ctx, id)
}
