package services

import (
	"context"
	"errors"
	"strings"

	"diskusi-bisnis/cache"
	"diskusi-bisnis/helper"
	"diskusi-bisnis/models"
	"diskusi-bisnis/repositories"
)

type TagService interface {
	CreateTag(ctx context.Context, actor models.Actor, req models.TagRequest) (*models.Tag, error)
	GetTags(ctx context.Context) ([]models.Tag, error)
	GetTag(ctx context.Context, slug string) (*models.Tag, error)
	UpdateTag(ctx context.Context, id uint, req models.TagRequest) (*models.Tag, error)
	DeleteTag(ctx context.Context, id uint) error
}

type tagService struct {
	tx      Transactor
	tagRepo repositories.TagRepository
	cache   cache.TagCache
}

func NewTagService(tx Transactor, tagRepo repositories.TagRepository, tagCache cache.TagCache) TagService {
	return &tagService{tx: tx, tagRepo: tagRepo, cache: tagCache}
}

func (s *tagService) CreateTag(ctx context.Context, actor models.Actor, req models.TagRequest) (*models.Tag, error) {
	name := helper.NormalizeTagName(req.Name)
	slug := helper.Slugify(name)
	if slug == "" {
		return nil, models.NewValidationError("Tag name must contain letters or digits")
	}

	if err := s.ensureSlugFree(ctx, slug, 0); err != nil {
		return nil, err
	}

	createdBy := actor.ID
	tag := &models.Tag{
		Name:        name,
		Slug:        slug,
		Description: strings.TrimSpace(req.Description),
		CreatedBy:   &createdBy,
	}
	if err := s.tagRepo.Create(ctx, tag); err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx)
	return tag, nil
}

// GetTags lists tags by usage, most used first, served from cache when warm.
func (s *tagService) GetTags(ctx context.Context) ([]models.Tag, error) {
	if tags, ok := s.cache.Get(ctx); ok {
		return tags, nil
	}
	tags, err := s.tagRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if tags == nil {
		tags = []models.Tag{}
	}
	s.cache.Set(ctx, tags)
	return tags, nil
}

func (s *tagService) GetTag(ctx context.Context, slug string) (*models.Tag, error) {
	return s.tagRepo.GetBySlug(ctx, strings.ToLower(strings.TrimSpace(slug)))
}

func (s *tagService) UpdateTag(ctx context.Context, id uint, req models.TagRequest) (*models.Tag, error) {
	name := helper.NormalizeTagName(req.Name)
	slug := helper.Slugify(name)
	if slug == "" {
		return nil, models.NewValidationError("Tag name must contain letters or digits")
	}

	if err := s.ensureSlugFree(ctx, slug, id); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{
		"name":        name,
		"slug":        slug,
		"description": strings.TrimSpace(req.Description),
	}
	if err := s.tagRepo.Update(ctx, id, fields); err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx)
	return s.tagRepo.GetByID(ctx, id)
}

// ensureSlugFree reports a conflict when another tag already owns slug. The
// unique index still guards against concurrent writers.
func (s *tagService) ensureSlugFree(ctx context.Context, slug string, selfID uint) error {
	existing, err := s.tagRepo.GetBySlug(ctx, slug)
	if errors.Is(err, models.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if existing.ID != selfID {
		return models.NewConflictError("Tag %q already exists", existing.Name)
	}
	return nil
}

func (s *tagService) DeleteTag(ctx context.Context, id uint) error {
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		return s.tagRepo.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	s.cache.Invalidate(ctx)
	return nil
}
