package repositories

import (
	"context"
	"fmt"

	"diskusi-bisnis/models"

	"gorm.io/gorm"
)

// TargetRepository resolves votable and commentable references. Each kind maps
// to its own model; table names never come from request input.
type TargetRepository interface {
	Lookup(ctx context.Context, target models.Target) (*models.TargetInfo, error)
	AdjustVotes(ctx context.Context, target models.Target, upDelta, downDelta int) error
}

type targetRepository struct {
	db *gorm.DB
}

func NewTargetRepository(db *gorm.DB) TargetRepository {
	return &targetRepository{db: db}
}

func (r *targetRepository) Lookup(ctx context.Context, target models.Target) (*models.TargetInfo, error) {
	db := conn(ctx, r.db)
	info := &models.TargetInfo{Target: target}

	switch target.Kind {
	case models.TargetQuestion:
		var q models.Question
		if err := db.Select("id", "author_id", "title").First(&q, target.ID).Error; err != nil {
			return nil, mapError(err, "question")
		}
		info.AuthorID = q.AuthorID
		info.QuestionID = q.ID
		info.QuestionTitle = q.Title
	case models.TargetAnswer:
		var row struct {
			AuthorID   uint
			QuestionID uint
			Title      string
		}
		res := db.Table("answers").
			Select("answers.author_id, answers.question_id, questions.title").
			Joins("JOIN questions ON questions.id = answers.question_id").
			Where("answers.id = ?", target.ID).
			Limit(1).
			Scan(&row)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, models.NewNotFoundError("answer not found")
		}
		info.AuthorID = row.AuthorID
		info.QuestionID = row.QuestionID
		info.QuestionTitle = row.Title
	default:
		return nil, models.NewValidationError("unknown target type %q", target.Kind)
	}
	return info, nil
}

// AdjustVotes applies counter deltas to the target row with column arithmetic.
func (r *targetRepository) AdjustVotes(ctx context.Context, target models.Target, upDelta, downDelta int) error {
	if upDelta == 0 && downDelta == 0 {
		return nil
	}

	var model interface{}
	switch target.Kind {
	case models.TargetQuestion:
		model = &models.Question{}
	case models.TargetAnswer:
		model = &models.Answer{}
	default:
		return fmt.Errorf("adjust votes: unknown target type %q", target.Kind)
	}

	res := conn(ctx, r.db).Model(model).Where("id = ?", target.ID).UpdateColumns(map[string]interface{}{
		"upvotes_count":   gorm.Expr("upvotes_count + ?", upDelta),
		"downvotes_count": gorm.Expr("downvotes_count + ?", downDelta),
	})
	return requireAffected(res, string(target.Kind))
}
