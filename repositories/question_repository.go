package repositories

import (
	"context"
	"strings"

	"diskusi-bisnis/models"

	sq "github.com/Masterminds/squirrel"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type QuestionRepository interface {
	Create(ctx context.Context, question *models.Question) error
	GetByID(ctx context.Context, id uint) (*models.Question, error)
	GetDetail(ctx context.Context, id uint) (*models.Question, error)
	List(ctx context.Context, params models.QuestionListParams) ([]models.QuestionSummary, int64, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
	IncrementViews(ctx context.Context, id uint) error
	AdjustAnswersCount(ctx context.Context, id uint, delta int) error
	SetHasAcceptedAnswer(ctx context.Context, id uint, has bool) error
	Close(ctx context.Context, id uint) error
	AttachTags(ctx context.Context, questionID uint, tagIDs []uint) error
	DetachTags(ctx context.Context, questionID uint) error
	TagIDs(ctx context.Context, questionID uint) ([]uint, error)
	TagsFor(ctx context.Context, questionIDs []uint) (map[uint][]models.Tag, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(ctx context.Context, question *models.Question) error {
	return mapError(conn(ctx, r.db).Omit(clause.Associations).Create(question).Error, "question")
}

func (r *questionRepository) GetByID(ctx context.Context, id uint) (*models.Question, error) {
	var question models.Question
	if err := conn(ctx, r.db).First(&question, id).Error; err != nil {
		return nil, mapError(err, "question")
	}
	return &question, nil
}

// GetDetail loads the question with its author, tags and answers. Answers are
// ordered accepted first, then by upvotes, then oldest first.
func (r *questionRepository) GetDetail(ctx context.Context, id uint) (*models.Question, error) {
	var question models.Question
	err := conn(ctx, r.db).
		Preload("Author", publicAuthor).
		Preload("Tags", func(db *gorm.DB) *gorm.DB { return db.Order("tags.name ASC") }).
		Preload("Answers", func(db *gorm.DB) *gorm.DB {
			return db.Order("is_accepted DESC, upvotes_count DESC, created_at ASC")
		}).
		Preload("Answers.Author", publicAuthor).
		First(&question, id).Error
	if err != nil {
		return nil, mapError(err, "question")
	}
	return &question, nil
}

func (r *questionRepository) List(ctx context.Context, params models.QuestionListParams) ([]models.QuestionSummary, int64, error) {
	params.Normalize()

	countSQL, countArgs, err := applyQuestionFilters(sq.Select("COUNT(*)"), params).ToSql()
	if err != nil {
		return nil, 0, err
	}
	var total int64
	if err := conn(ctx, r.db).Raw(countSQL, countArgs...).Scan(&total).Error; err != nil {
		return nil, 0, mapError(err, "question")
	}

	query := applyQuestionFilters(sq.Select(
		"q.id", "q.title", "q.content", "q.author_id",
		"q.upvotes_count", "q.downvotes_count", "q.views_count", "q.answers_count",
		"q.has_accepted_answer", "q.is_closed", "q.created_at", "q.updated_at",
		"u.display_name AS author_name", "u.avatar_url AS author_avatar", "u.reputation_points AS author_reputation",
	), params)

	switch params.Sort {
	case models.SortPopular:
		query = query.OrderBy("q.upvotes_count DESC", "q.views_count DESC", "q.id DESC")
	default:
		query = query.OrderBy("q.created_at DESC", "q.id DESC")
	}
	query = query.Limit(uint64(params.Limit)).Offset(uint64(params.Offset()))

	listSQL, listArgs, err := query.ToSql()
	if err != nil {
		return nil, 0, err
	}
	var rows []models.QuestionSummary
	if err := conn(ctx, r.db).Raw(listSQL, listArgs...).Scan(&rows).Error; err != nil {
		return nil, 0, mapError(err, "question")
	}
	return rows, total, nil
}

// likeEscaper makes user input match literally inside a LIKE pattern.
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

func applyQuestionFilters(b sq.SelectBuilder, params models.QuestionListParams) sq.SelectBuilder {
	b = b.From("questions q").Join("users u ON u.id = q.author_id")

	if params.Sort == models.SortUnanswered {
		b = b.Where(sq.Eq{"q.answers_count": 0})
	}
	if params.AuthorID != 0 {
		b = b.Where(sq.Eq{"q.author_id": params.AuthorID})
	}
	if tag := strings.TrimSpace(params.Tag); tag != "" {
		b = b.Where(`EXISTS (SELECT 1 FROM question_tags qt JOIN tags t ON t.id = qt.tag_id
			WHERE qt.question_id = q.id AND t.slug = ?)`, strings.ToLower(tag))
	}
	if search := strings.TrimSpace(params.Search); search != "" {
		pattern := "%" + likeEscaper.Replace(strings.ToLower(search)) + "%"
		b = b.Where(sq.Or{
			sq.Expr(`LOWER(q.title) LIKE ? ESCAPE '\'`, pattern),
			sq.Expr(`LOWER(q.content) LIKE ? ESCAPE '\'`, pattern),
		})
	}
	return b
}

func (r *questionRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) error {
	res := conn(ctx, r.db).Model(&models.Question{}).Where("id = ?", id).Updates(fields)
	return requireAffected(res, "question")
}

func (r *questionRepository) Delete(ctx context.Context, id uint) error {
	return requireAffected(conn(ctx, r.db).Delete(&models.Question{}, id), "question")
}

func (r *questionRepository) IncrementViews(ctx context.Context, id uint) error {
	return r.addColumn(ctx, id, "views_count", 1)
}

func (r *questionRepository) AdjustAnswersCount(ctx context.Context, id uint, delta int) error {
	return r.addColumn(ctx, id, "answers_count", delta)
}

func (r *questionRepository) addColumn(ctx context.Context, id uint, column string, delta int) error {
	res := conn(ctx, r.db).Model(&models.Question{}).Where("id = ?", id).
		UpdateColumn(column, gorm.Expr(column+" + ?", delta))
	return requireAffected(res, "question")
}

func (r *questionRepository) SetHasAcceptedAnswer(ctx context.Context, id uint, has bool) error {
	res := conn(ctx, r.db).Model(&models.Question{}).Where("id = ?", id).
		UpdateColumn("has_accepted_answer", has)
	return requireAffected(res, "question")
}

func (r *questionRepository) Close(ctx context.Context, id uint) error {
	return r.Update(ctx, id, map[string]interface{}{"is_closed": true})
}

func (r *questionRepository) AttachTags(ctx context.Context, questionID uint, tagIDs []uint) error {
	if len(tagIDs) == 0 {
		return nil
	}
	links := make([]models.QuestionTag, 0, len(tagIDs))
	for _, id := range tagIDs {
		links = append(links, models.QuestionTag{QuestionID: questionID, TagID: id})
	}
	return mapError(conn(ctx, r.db).Clauses(clause.OnConflict{DoNothing: true}).Create(&links).Error, "question tag")
}

func (r *questionRepository) DetachTags(ctx context.Context, questionID uint) error {
	return conn(ctx, r.db).Where("question_id = ?", questionID).Delete(&models.QuestionTag{}).Error
}

func (r *questionRepository) TagIDs(ctx context.Context, questionID uint) ([]uint, error) {
	var ids []uint
	err := conn(ctx, r.db).Model(&models.QuestionTag{}).
		Where("question_id = ?", questionID).
		Pluck("tag_id", &ids).Error
	return ids, err
}

type questionTagRow struct {
	QuestionID uint
	ID         uint
	Name       string
	Slug       string
	UsageCount int
}

// TagsFor batch-loads the tags of several questions, keyed by question id.
func (r *questionRepository) TagsFor(ctx context.Context, questionIDs []uint) (map[uint][]models.Tag, error) {
	out := make(map[uint][]models.Tag, len(questionIDs))
	if len(questionIDs) == 0 {
		return out, nil
	}
	var rows []questionTagRow
	err := conn(ctx, r.db).Table("tags").
		Select("question_tags.question_id, tags.id, tags.name, tags.slug, tags.usage_count").
		Joins("JOIN question_tags ON question_tags.tag_id = tags.id").
		Where("question_tags.question_id IN ?", questionIDs).
		Order("tags.name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.QuestionID] = append(out[row.QuestionID], models.Tag{
			ID: row.ID, Name: row.Name, Slug: row.Slug, UsageCount: row.UsageCount,
		})
	}
	return out, nil
}
