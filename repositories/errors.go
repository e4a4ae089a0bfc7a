package repositories

import (
	"errors"

	"diskusi-bisnis/models"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const pgUniqueViolation = "23505"

// mapError turns store errors into the shared error kinds. Anything it does
// not recognise is returned unchanged and ends up as an internal error.
func mapError(err error, entity string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.NewNotFoundError("%s not found", entity)
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return models.NewConflictError("%s already exists", entity)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return models.NewConflictError("%s already exists", entity)
	}
	return err
}

func requireAffected(res *gorm.DB, entity string) error {
	if res.Error != nil {
		return mapError(res.Error, entity)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("%s not found", entity)
	}
	return nil
}

// publicAuthor limits preloaded authors to the fields shown next to content.
func publicAuthor(db *gorm.DB) *gorm.DB {
	return db.Select("id", "display_name", "avatar_url", "reputation_points", "role", "created_at", "updated_at")
}
