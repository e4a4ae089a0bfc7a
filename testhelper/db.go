// Package testhelper provides throwaway databases and fixtures for tests.
package testhelper

import (
	"fmt"
	"testing"

	"diskusi-bisnis/config"
	"diskusi-bisnis/models"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB opens a private in-memory SQLite database with the full schema.
// The pool is pinned to one connection: a transaction holds it, so code under
// test must route every call inside RunInTx through the transaction context.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, config.Migrate(db))
	return db
}

func CreateUser(t testing.TB, db *gorm.DB, name string, role models.Role) *models.User {
	t.Helper()
	user := &models.User{
		Email:       fmt.Sprintf("%s-%s@example.com", name, uuid.NewString()[:8]),
		Password:    "not-a-real-hash",
		DisplayName: name,
		Role:        role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func CreateQuestion(t testing.TB, db *gorm.DB, authorID uint, title string) *models.Question {
	t.Helper()
	q := &models.Question{Title: title, Content: "Bagaimana cara terbaik untuk " + title + "?", AuthorID: authorID}
	require.NoError(t, db.Omit("Tags", "Answers", "Author").Create(q).Error)
	return q
}

// CreateAnswer inserts an answer and bumps the parent's answers_count like the
// service does.
func CreateAnswer(t testing.TB, db *gorm.DB, questionID, authorID uint) *models.Answer {
	t.Helper()
	a := &models.Answer{Content: "Coba mulai dari media sosial dan WhatsApp.", QuestionID: questionID, AuthorID: authorID}
	require.NoError(t, db.Omit("Author").Create(a).Error)
	require.NoError(t, db.Model(&models.Question{}).Where("id = ?", questionID).
		UpdateColumn("answers_count", gorm.Expr("answers_count + 1")).Error)
	return a
}

func ReloadUser(t testing.TB, db *gorm.DB, id uint) *models.User {
	t.Helper()
	var u models.User
	require.NoError(t, db.First(&u, id).Error)
	return &u
}

func ReloadQuestion(t testing.TB, db *gorm.DB, id uint) *models.Question {
	t.Helper()
	var q models.Question
	require.NoError(t, db.First(&q, id).Error)
	return &q
}

func ReloadAnswer(t testing.TB, db *gorm.DB, id uint) *models.Answer {
	t.Helper()
	var a models.Answer
	require.NoError(t, db.First(&a, id).Error)
	return &a
}

// Count returns the number of rows of model matching the optional condition.
func Count(t testing.TB, db *gorm.DB, model interface{}, query string, args ...interface{}) int64 {
	t.Helper()
	var n int64
	tx := db.Model(model)
	if query != "" {
		tx = tx.Where(query, args...)
	}
	require.NoError(t, tx.Count(&n).Error)
	return n
}
