package repositories

import (
	"context"

	"diskusi-bisnis/models"

	"gorm.io/gorm"
)

const userDirectoryLimit = 50

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}) error
	AdjustReputation(ctx context.Context, id uint, delta int) error
	List(ctx context.Context, params models.UserListParams) ([]models.UserSummary, error)
	GetSummary(ctx context.Context, id uint) (*models.UserSummary, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	return mapError(conn(ctx, r.db).Create(user).Error, "user")
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := conn(ctx, r.db).First(&user, id).Error; err != nil {
		return nil, mapError(err, "user")
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := conn(ctx, r.db).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, mapError(err, "user")
	}
	return &user, nil
}

func (r *userRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) error {
	res := conn(ctx, r.db).Model(&models.User{}).Where("id = ?", id).Updates(fields)
	return requireAffected(res, "user")
}

func (r *userRepository) AdjustReputation(ctx context.Context, id uint, delta int) error {
	if delta == 0 {
		return nil
	}
	res := conn(ctx, r.db).Model(&models.User{}).Where("id = ?", id).
		UpdateColumn("reputation_points", gorm.Expr("reputation_points + ?", delta))
	return requireAffected(res, "user")
}

func (r *userRepository) List(ctx context.Context, params models.UserListParams) ([]models.UserSummary, error) {
	limit := params.Limit
	if limit <= 0 || limit > userDirectoryLimit {
		limit = userDirectoryLimit
	}

	order := "users.reputation_points DESC, users.id ASC"
	switch params.Sort {
	case "newest":
		order = "users.created_at DESC, users.id DESC"
	case "name":
		order = "users.display_name ASC, users.id ASC"
	}

	var users []models.UserSummary
	err := r.summaries(ctx).
		Where("users.is_banned = ?", false).
		Order(order).
		Limit(limit).
		Scan(&users).Error
	return users, mapError(err, "user")
}

// GetSummary returns the public profile; banned users are reported as missing.
func (r *userRepository) GetSummary(ctx context.Context, id uint) (*models.UserSummary, error) {
	var user models.UserSummary
	res := r.summaries(ctx).
		Where("users.id = ? AND users.is_banned = ?", id, false).
		Limit(1).
		Scan(&user)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, models.NewNotFoundError("user not found")
	}
	return &user, nil
}

func (r *userRepository) summaries(ctx context.Context) *gorm.DB {
	return conn(ctx, r.db).Table("users").
		Select(`users.id, users.display_name, users.avatar_url, users.bio, users.reputation_points, users.role, users.created_at,
			(SELECT COUNT(*) FROM questions WHERE questions.author_id = users.id) AS questions_count,
			(SELECT COUNT(*) FROM answers WHERE answers.author_id = users.id) AS answers_count`)
}
