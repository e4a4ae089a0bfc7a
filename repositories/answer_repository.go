package repositories

import (
	"context"
	"errors"
	"time"

	"diskusi-bisnis/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AnswerRepository interface {
	Create(ctx context.Context, answer *models.Answer) error
	GetByID(ctx context.Context, id uint) (*models.Answer, error)
	GetAccepted(ctx context.Context, questionID uint) (*models.Answer, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
	IDsByQuestion(ctx context.Context, questionID uint) ([]uint, error)
	DeleteByQuestion(ctx context.Context, questionID uint) error
	ClearAccepted(ctx context.Context, questionID uint) error
	MarkAccepted(ctx context.Context, id uint, at time.Time) error
	ListByAuthor(ctx context.Context, authorID uint) ([]models.AnswerWithQuestion, error)
}

type answerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

func (r *answerRepository) Create(ctx context.Context, answer *models.Answer) error {
	return mapError(conn(ctx, r.db).Omit(clause.Associations).Create(answer).Error, "answer")
}

func (r *answerRepository) GetByID(ctx context.Context, id uint) (*models.Answer, error) {
	var answer models.Answer
	if err := conn(ctx, r.db).First(&answer, id).Error; err != nil {
		return nil, mapError(err, "answer")
	}
	return &answer, nil
}

// GetAccepted returns nil without error when the question has no accepted answer.
func (r *answerRepository) GetAccepted(ctx context.Context, questionID uint) (*models.Answer, error) {
	var answer models.Answer
	err := conn(ctx, r.db).Where("question_id = ? AND is_accepted = ?", questionID, true).First(&answer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &answer, nil
}

func (r *answerRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) error {
	res := conn(ctx, r.db).Model(&models.Answer{}).Where("id = ?", id).Updates(fields)
	return requireAffected(res, "answer")
}

func (r *answerRepository) Delete(ctx context.Context, id uint) error {
	return requireAffected(conn(ctx, r.db).Delete(&models.Answer{}, id), "answer")
}

func (r *answerRepository) IDsByQuestion(ctx context.Context, questionID uint) ([]uint, error) {
	var ids []uint
	err := conn(ctx, r.db).Model(&models.Answer{}).Where("question_id = ?", questionID).Pluck("id", &ids).Error
	return ids, err
}

func (r *answerRepository) DeleteByQuestion(ctx context.Context, questionID uint) error {
	return conn(ctx, r.db).Where("question_id = ?", questionID).Delete(&models.Answer{}).Error
}

func (r *answerRepository) ClearAccepted(ctx context.Context, questionID uint) error {
	return conn(ctx, r.db).Model(&models.Answer{}).
		Where("question_id = ? AND is_accepted = ?", questionID, true).
		UpdateColumns(map[string]interface{}{"is_accepted": false, "accepted_at": nil}).Error
}

func (r *answerRepository) MarkAccepted(ctx context.Context, id uint, at time.Time) error {
	res := conn(ctx, r.db).Model(&models.Answer{}).Where("id = ?", id).
		UpdateColumns(map[string]interface{}{"is_accepted": true, "accepted_at": at})
	return requireAffected(res, "answer")
}

func (r *answerRepository) ListByAuthor(ctx context.Context, authorID uint) ([]models.AnswerWithQuestion, error) {
	var rows []models.AnswerWithQuestion
	err := conn(ctx, r.db).Table("answers").
		Select("answers.id, answers.content, answers.question_id, questions.title AS question_title, " +
			"answers.upvotes_count, answers.downvotes_count, answers.is_accepted, answers.created_at").
		Joins("JOIN questions ON questions.id = answers.question_id").
		Where("answers.author_id = ?", authorID).
		Order("answers.created_at DESC").
		Scan(&rows).Error
	return rows, err
}
