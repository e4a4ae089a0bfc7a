package repositories

import (
	"context"
	"errors"
	"strings"

	"diskusi-bisnis/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TagRepository interface {
	Acquire(ctx context.Context, name, slug string, createdBy *uint) (*models.Tag, error)
	Create(ctx context.Context, tag *models.Tag) error
	GetByID(ctx context.Context, id uint) (*models.Tag, error)
	GetBySlug(ctx context.Context, slug string) (*models.Tag, error)
	GetAll(ctx context.Context) ([]models.Tag, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
	AdjustUsage(ctx context.Context, ids []uint, delta int) error
}

type tagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

// Acquire finds a tag by name (case-insensitive) or slug and bumps its usage,
// or creates it with usage 1. Creation is an upsert on slug so two requests
// introducing the same tag end up sharing one row.
func (r *tagRepository) Acquire(ctx context.Context, name, slug string, createdBy *uint) (*models.Tag, error) {
	db := conn(ctx, r.db)

	var tag models.Tag
	err := db.Where("LOWER(name) = ? OR slug = ?", strings.ToLower(name), slug).First(&tag).Error
	if err == nil {
		if err := r.AdjustUsage(ctx, []uint{tag.ID}, 1); err != nil {
			return nil, err
		}
		tag.UsageCount++
		return &tag, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	tag = models.Tag{Name: name, Slug: slug, UsageCount: 1, CreatedBy: createdBy}
	err = db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slug"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"usage_count": gorm.Expr("tags.usage_count + 1")}),
	}).Create(&tag).Error
	if err != nil {
		return nil, mapError(err, "tag")
	}

	// The conflict path does not reliably return the existing row id.
	return r.GetBySlug(ctx, slug)
}

func (r *tagRepository) Create(ctx context.Context, tag *models.Tag) error {
	return mapError(conn(ctx, r.db).Create(tag).Error, "tag")
}

func (r *tagRepository) GetByID(ctx context.Context, id uint) (*models.Tag, error) {
	var tag models.Tag
	if err := conn(ctx, r.db).First(&tag, id).Error; err != nil {
		return nil, mapError(err, "tag")
	}
	return &tag, nil
}

func (r *tagRepository) GetBySlug(ctx context.Context, slug string) (*models.Tag, error) {
	var tag models.Tag
	if err := conn(ctx, r.db).Where("slug = ?", slug).First(&tag).Error; err != nil {
		return nil, mapError(err, "tag")
	}
	return &tag, nil
}

func (r *tagRepository) GetAll(ctx context.Context) ([]models.Tag, error) {
	var tags []models.Tag
	err := conn(ctx, r.db).Order("usage_count DESC, name ASC").Find(&tags).Error
	return tags, err
}

func (r *tagRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) error {
	res := conn(ctx, r.db).Model(&models.Tag{}).Where("id = ?", id).Updates(fields)
	return requireAffected(res, "tag")
}

// Delete removes the tag and its question links.
func (r *tagRepository) Delete(ctx context.Context, id uint) error {
	db := conn(ctx, r.db)
	if err := db.Where("tag_id = ?", id).Delete(&models.QuestionTag{}).Error; err != nil {
		return err
	}
	return requireAffected(db.Delete(&models.Tag{}, id), "tag")
}

func (r *tagRepository) AdjustUsage(ctx context.Context, ids []uint, delta int) error {
	if len(ids) == 0 || delta == 0 {
		return nil
	}
	return conn(ctx, r.db).Model(&models.Tag{}).Where("id IN ?", ids).
		UpdateColumn("usage_count", gorm.Expr("usage_count + ?", delta)).Error
}
