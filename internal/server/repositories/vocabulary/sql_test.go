package vocabulary

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CODE-SECX/English-Sikho/internal/models"
	"github.com/CODE-SECX/English-Sikho/internal/server/repositories/repotest"
)

func ptr(s string) *string { return &s }

var t0 = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

func TestSQLRepository_ListNewestFirst(t *testing.T) {
	repo := NewSQLRepository(repotest.NewSQLite(t))
	ctx := context.Background()

	for i, w := range []string{"first", "second", "third"} {
		v := &models.Vocabulary{ID: w, Word: w, Meaning: "<b>" + w + "</b>", Language: "English", Date: "2024-03-01", CreatedAt: t0.Add(time.Duration(i) * time.Minute)}
		require.NoError(t, repo.Create(ctx, v))
	}

	got, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"third", "second", "first"}, []string{got[0].Word, got[1].Word, got[2].Word})
	assert.Equal(t, "<b>third</b>", got[0].Meaning)
	assert.True(t, got[2].CreatedAt.Equal(t0))
}

func TestSQLRepository_UpdatePartial(t *testing.T) {
	repo := NewSQLRepository(repotest.NewSQLite(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Vocabulary{ID: "v1", Word: "bench", Meaning: "seat", MomentOfMemory: "park", Language: "English", Date: "2024-03-01", CreatedAt: t0}))

	require.NoError(t, repo.Update(ctx, "v1", models.MomentPatch("")))
	require.NoError(t, repo.Update(ctx, "v1", models.VocabularyPatch{Word: ptr("Bench"), Date: ptr("2024-03-02")}))
	require.NoError(t, repo.Update(ctx, "missing", models.VocabularyPatch{Word: ptr("x")}))

	got, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Bench", got[0].Word)
	assert.Equal(t, "seat", got[0].Meaning)
	assert.Equal(t, "", got[0].MomentOfMemory)
	assert.Equal(t, "2024-03-02", got[0].Date)

	require.NoError(t, repo.Delete(ctx, "v1"))
	require.NoError(t, repo.Delete(ctx, "v1"))
	got, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSQLRepository_DBErrors(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := NewSQLRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT .* FROM vocabulary ORDER BY created_at DESC`).WillReturnError(errors.New("db is down"))
	_, err = repo.List(ctx)
	require.ErrorContains(t, err, "failed to select vocabulary")

	mock.ExpectExec(`INSERT INTO vocabulary`).
		WithArgs("v1", "w", "", "", "", "", "", t0).
		WillReturnError(errors.New("dup"))
	err = repo.Create(ctx, &models.Vocabulary{ID: "v1", Word: "w", CreatedAt: t0})
	require.ErrorContains(t, err, "db error: dup")

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE vocabulary SET word = $1, language = $2 WHERE id = $3`)).
		WithArgs("w", "Hindi", "v1").
		WillReturnError(errors.New("locked"))
	err = repo.Update(ctx, "v1", models.VocabularyPatch{Word: ptr("w"), Language: ptr("Hindi")})
	require.ErrorContains(t, err, "db error: locked")

	mock.ExpectExec(`DELETE FROM vocabulary`).WithArgs("v1").WillReturnError(errors.New("gone"))
	require.ErrorContains(t, repo.Delete(ctx, "v1"), "db error: gone")

	require.NoError(t, mock.ExpectationsWereMet())
}
