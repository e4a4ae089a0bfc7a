package repositories

import (
	"context"
	"errors"

	"diskusi-bisnis/models"

	"gorm.io/gorm"
)

type VoteRepository interface {
	Find(ctx context.Context, userID uint, target models.Target) (*models.Vote, error)
	GetByID(ctx context.Context, id uint) (*models.Vote, error)
	Create(ctx context.Context, vote *models.Vote) error
	UpdateType(ctx context.Context, id uint, voteType models.VoteType) error
	Delete(ctx context.Context, id uint) error
	DeleteForTargets(ctx context.Context, kind models.TargetKind, ids []uint) error
}

type voteRepository struct {
	db *gorm.DB
}

func NewVoteRepository(db *gorm.DB) VoteRepository {
	return &voteRepository{db: db}
}

// Find returns nil without error when the user has not voted on target.
func (r *voteRepository) Find(ctx context.Context, userID uint, target models.Target) (*models.Vote, error) {
	var vote models.Vote
	err := conn(ctx, r.db).
		Where("user_id = ? AND votable_type = ? AND votable_id = ?", userID, target.Kind, target.ID).
		First(&vote).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &vote, nil
}

func (r *voteRepository) GetByID(ctx context.Context, id uint) (*models.Vote, error) {
	var vote models.Vote
	if err := conn(ctx, r.db).First(&vote, id).Error; err != nil {
		return nil, mapError(err, "vote")
	}
	return &vote, nil
}

func (r *voteRepository) Create(ctx context.Context, vote *models.Vote) error {
	return mapError(conn(ctx, r.db).Create(vote).Error, "vote")
}

func (r *voteRepository) UpdateType(ctx context.Context, id uint, voteType models.VoteType) error {
	res := conn(ctx, r.db).Model(&models.Vote{}).Where("id = ?", id).Update("vote_type", voteType)
	return requireAffected(res, "vote")
}

func (r *voteRepository) Delete(ctx context.Context, id uint) error {
	return requireAffected(conn(ctx, r.db).Delete(&models.Vote{}, id), "vote")
}

func (r *voteRepository) DeleteForTargets(ctx context.Context, kind models.TargetKind, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return conn(ctx, r.db).
		Where("votable_type = ? AND votable_id IN ?", kind, ids).
		Delete(&models.Vote{}).Error
}
