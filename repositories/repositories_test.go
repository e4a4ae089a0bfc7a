package repositories

import (
	"context"
	"errors"
	"testing"

	"diskusi-bisnis/models"
	"diskusi-bisnis/testhelper"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestTagRepository_Acquire(t *testing.T) {
	db := testhelper.NewDB(t)
	repo := NewTagRepository(db)
	ctx := context.Background()

	first, err := repo.Acquire(ctx, "marketing", "marketing", nil)
	require.NoError(t, err)
	assert.Equal(t, 1, first.UsageCount)

	// matched by name regardless of case
	again, err := repo.Acquire(ctx, "Marketing", "marketing", nil)
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)

	reloaded, err := repo.GetBySlug(ctx, "marketing")
	require.NoError(t, err)
	assert.Equal(t, 2, reloaded.UsageCount)
	assert.Equal(t, int64(1), testhelper.Count(t, db, &models.Tag{}, ""))
}

func TestTagRepository_AcquireMatchesSlug(t *testing.T) {
	db := testhelper.NewDB(t)
	repo := NewTagRepository(db)
	ctx := context.Background()

	require.NoError(t, db.Create(&models.Tag{Name: "ekspor-impor", Slug: "ekspor-impor", UsageCount: 3}).Error)

	tag, err := repo.Acquire(ctx, "ekspor impor", "ekspor-impor", nil)
	require.NoError(t, err)
	assert.Equal(t, 4, tag.UsageCount)
	assert.Equal(t, int64(1), testhelper.Count(t, db, &models.Tag{}, ""))
}

func TestTagRepository_DeleteRemovesLinks(t *testing.T) {
	db := testhelper.NewDB(t)
	tags := NewTagRepository(db)
	questions := NewQuestionRepository(db)
	ctx := context.Background()

	author := testhelper.CreateUser(t, db, "alice", models.RoleMember)
	q := testhelper.CreateQuestion(t, db, author.ID, "Modal awal usaha")
	tag, err := tags.Acquire(ctx, "modal", "modal", nil)
	require.NoError(t, err)
	require.NoError(t, questions.AttachTags(ctx, q.ID, []uint{tag.ID}))

	require.NoError(t, tags.Delete(ctx, tag.ID))
	assert.Zero(t, testhelper.Count(t, db, &models.QuestionTag{}, ""))

	_, err = tags.GetByID(ctx, tag.ID)
	assert.True(t, errors.Is(err, models.ErrNotFound))
}

func TestQuestionRepository_ListFilters(t *testing.T) {
	db := testhelper.NewDB(t)
	repo := NewQuestionRepository(db)
	tags := NewTagRepository(db)
	ctx := context.Background()

	alice := testhelper.CreateUser(t, db, "alice", models.RoleMember)
	budi := testhelper.CreateUser(t, db, "budi", models.RoleMember)

	q1 := testhelper.CreateQuestion(t, db, alice.ID, "Strategi harga kopi")
	q2 := testhelper.CreateQuestion(t, db, alice.ID, "Izin usaha rumahan")
	q3 := testhelper.CreateQuestion(t, db, budi.ID, "Promosi kopi di Instagram")
	testhelper.CreateAnswer(t, db, q2.ID, budi.ID)

	kopi, err := tags.Acquire(ctx, "kopi", "kopi", nil)
	require.NoError(t, err)
	require.NoError(t, repo.AttachTags(ctx, q1.ID, []uint{kopi.ID}))
	require.NoError(t, repo.AttachTags(ctx, q3.ID, []uint{kopi.ID}))
	require.NoError(t, db.Model(&models.Question{}).Where("id = ?", q3.ID).Update("upvotes_count", 3).Error)

	rows, total, err := repo.List(ctx, models.QuestionListParams{Tag: "KOPI"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, rows, 2)
	assert.Equal(t, q3.ID, rows[0].ID, "newest first")
	assert.Equal(t, "budi", rows[0].AuthorName)

	rows, _, err = repo.List(ctx, models.QuestionListParams{Sort: models.SortPopular})
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, q3.ID, rows[0].ID)

	rows, total, err = repo.List(ctx, models.QuestionListParams{Sort: models.SortUnanswered})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	for _, row := range rows {
		assert.NotEqual(t, q2.ID, row.ID)
	}

	rows, _, err = repo.List(ctx, models.QuestionListParams{Search: "IZIN"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, q2.ID, rows[0].ID)

	rows, total, err = repo.List(ctx, models.QuestionListParams{AuthorID: alice.ID, Limit: 1, Page: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, rows, 1)
	assert.Equal(t, q1.ID, rows[0].ID)

	byQuestion, err := repo.TagsFor(ctx, []uint{q1.ID, q2.ID})
	require.NoError(t, err)
	assert.Len(t, byQuestion[q1.ID], 1)
	assert.Empty(t, byQuestion[q2.ID])
}

func TestQuestionRepository_SearchIsLiteral(t *testing.T) {
	db := testhelper.NewDB(t)
	repo := NewQuestionRepository(db)
	ctx := context.Background()

	alice := testhelper.CreateUser(t, db, "alice", models.RoleMember)
	percent := testhelper.CreateQuestion(t, db, alice.ID, "Diskon 100% untuk pelanggan baru")
	testhelper.CreateQuestion(t, db, alice.ID, "Target 1000 pelanggan pertama")
	underscore := testhelper.CreateQuestion(t, db, alice.ID, "Membuat kode_promo musiman")
	testhelper.CreateQuestion(t, db, alice.ID, "Membuat kodexpromo musiman")

	cases := []struct {
		search string
		want   uint
	}{
		{"100%", percent.ID},
		{"kode_promo", underscore.ID},
	}
	for _, tc := range cases {
		rows, total, err := repo.List(ctx, models.QuestionListParams{Search: tc.search})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total, tc.search)
		require.Len(t, rows, 1, tc.search)
		assert.Equal(t, tc.want, rows[0].ID, tc.search)
	}
}

func TestTargetRepository(t *testing.T) {
	db := testhelper.NewDB(t)
	repo := NewTargetRepository(db)
	ctx := context.Background()

	alice := testhelper.CreateUser(t, db, "alice", models.RoleMember)
	budi := testhelper.CreateUser(t, db, "budi", models.RoleMember)
	q := testhelper.CreateQuestion(t, db, alice.ID, "Menghitung HPP")
	a := testhelper.CreateAnswer(t, db, q.ID, budi.ID)

	info, err := repo.Lookup(ctx, models.Target{Kind: models.TargetAnswer, ID: a.ID})
	require.NoError(t, err)
	assert.Equal(t, budi.ID, info.AuthorID)
	assert.Equal(t, q.ID, info.QuestionID)
	assert.Equal(t, "Menghitung HPP", info.QuestionTitle)

	_, err = repo.Lookup(ctx, models.Target{Kind: models.TargetAnswer, ID: a.ID + 100})
	assert.True(t, errors.Is(err, models.ErrNotFound))
	_, err = repo.Lookup(ctx, models.Target{Kind: models.TargetQuestion, ID: q.ID + 100})
	assert.True(t, errors.Is(err, models.ErrNotFound))

	require.NoError(t, repo.AdjustVotes(ctx, models.Target{Kind: models.TargetAnswer, ID: a.ID}, 1, 0))
	require.NoError(t, repo.AdjustVotes(ctx, models.Target{Kind: models.TargetAnswer, ID: a.ID}, -1, 1))
	reloaded := testhelper.ReloadAnswer(t, db, a.ID)
	assert.Equal(t, 0, reloaded.UpvotesCount)
	assert.Equal(t, 1, reloaded.DownvotesCount)

	err = repo.AdjustVotes(ctx, models.Target{Kind: models.TargetQuestion, ID: q.ID + 100}, 1, 0)
	assert.True(t, errors.Is(err, models.ErrNotFound))
}

func TestTxManager_RollsBack(t *testing.T) {
	db := testhelper.NewDB(t)
	tx := NewTxManager(db)
	users := NewUserRepository(db)
	ctx := context.Background()

	alice := testhelper.CreateUser(t, db, "alice", models.RoleMember)

	boom := errors.New("boom")
	err := tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := users.AdjustReputation(ctx, alice.ID, 10); err != nil {
			return err
		}
		// nested calls join the outer transaction
		return tx.RunInTx(ctx, func(ctx context.Context) error {
			if err := users.AdjustReputation(ctx, alice.ID, 5); err != nil {
				return err
			}
			return boom
		})
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, testhelper.ReloadUser(t, db, alice.ID).ReputationPoints)
}

func TestNotificationRepository_MarkRead(t *testing.T) {
	db := testhelper.NewDB(t)
	repo := NewNotificationRepository(db)
	ctx := context.Background()

	alice := testhelper.CreateUser(t, db, "alice", models.RoleMember)
	budi := testhelper.CreateUser(t, db, "budi", models.RoleMember)

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Create(ctx, &models.Notification{
			UserID: alice.ID, Type: models.NotificationSystem, Title: "Selamat datang",
		}))
	}
	list, err := repo.ListByUser(ctx, alice.ID, 0)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.True(t, list[0].ID > list[2].ID, "most recent first")

	err = repo.MarkRead(ctx, list[0].ID, budi.ID)
	assert.True(t, errors.Is(err, models.ErrNotFound))
	require.NoError(t, repo.MarkRead(ctx, list[0].ID, alice.ID))

	n, err := repo.MarkAllRead(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestMapError(t *testing.T) {
	assert.Nil(t, mapError(nil, "user"))
	assert.True(t, errors.Is(mapError(gorm.ErrRecordNotFound, "user"), models.ErrNotFound))
	assert.True(t, errors.Is(mapError(gorm.ErrDuplicatedKey, "user"), models.ErrConflict))

	other := errors.New("connection reset")
	assert.Equal(t, other, mapError(other, "user"))
}
