package repositories

import (
	"context"

	"diskusi-bisnis/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id uint) (*models.Comment, error)
	Update(ctx context.Context, id uint, content string) error
	Delete(ctx context.Context, id uint) error
	ListForTargets(ctx context.Context, kind models.TargetKind, ids []uint) ([]models.Comment, error)
	DeleteForTargets(ctx context.Context, kind models.TargetKind, ids []uint) error
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	return mapError(conn(ctx, r.db).Omit(clause.Associations).Create(comment).Error, "comment")
}

func (r *commentRepository) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := conn(ctx, r.db).First(&comment, id).Error; err != nil {
		return nil, mapError(err, "comment")
	}
	return &comment, nil
}

func (r *commentRepository) Update(ctx context.Context, id uint, content string) error {
	res := conn(ctx, r.db).Model(&models.Comment{}).Where("id = ?", id).Update("content", content)
	return requireAffected(res, "comment")
}

func (r *commentRepository) Delete(ctx context.Context, id uint) error {
	return requireAffected(conn(ctx, r.db).Delete(&models.Comment{}, id), "comment")
}

// ListForTargets returns the comments on the given targets, oldest first.
func (r *commentRepository) ListForTargets(ctx context.Context, kind models.TargetKind, ids []uint) ([]models.Comment, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var comments []models.Comment
	err := conn(ctx, r.db).
		Preload("Author", publicAuthor).
		Where("commentable_type = ? AND commentable_id IN ?", kind, ids).
		Order("created_at ASC, id ASC").
		Find(&comments).Error
	return comments, err
}

func (r *commentRepository) DeleteForTargets(ctx context.Context, kind models.TargetKind, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return conn(ctx, r.db).
		Where("commentable_type = ? AND commentable_id IN ?", kind, ids).
		Delete(&models.Comment{}).Error
}
