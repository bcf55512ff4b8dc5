package store

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aimldept/portal/internal/app/models"
	"github.com/aimldept/portal/internal/pkg/apperrors"
)

func strPtr(s string) *string { return &s }

func TestStudentStoreInsert(t *testing.T) {
	s := OpenStudentStore(filepath.Join(t.TempDir(), "students.json"), zerolog.Nop())

	require.NoError(t, s.Insert("S1", models.Student{Password: "p1", YearPage: "/year1-sem1/page.html"}))

	t.Run("duplicate ID conflicts and keeps the original", func(t *testing.T) {
		err := s.Insert("S1", models.Student{Password: "other", YearPage: "/elsewhere.html"})
		assert.True(t, errors.Is(err, apperrors.ErrConflict))

		got, ok := s.Get("S1")
		require.True(t, ok)
		assert.Equal(t, "p1", got.Password)
		assert.Equal(t, "/year1-sem1/page.html", got.YearPage)
	})
}

func TestStudentStoreUpdatePartial(t *testing.T) {
	s := OpenStudentStore(filepath.Join(t.TempDir(), "students.json"), zerolog.Nop())
	require.NoError(t, s.Insert("S1", models.Student{Password: "p1", YearPage: "/old.html"}))

	// Only the year page is supplied; the password must stay unchanged.
	require.NoError(t, s.Update("S1", StudentUpdate{YearPage: strPtr("/new.html")}))

	got, ok := s.Get("S1")
	require.True(t, ok)
	assert.Equal(t, "p1", got.Password)
	assert.Equal(t, "/new.html", got.YearPage)

	t.Run("unknown ID", func(t *testing.T) {
		err := s.Update("missing", StudentUpdate{Password: strPtr("x")})
		assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	})
}

func TestStudentStoreDeleteIdempotence(t *testing.T) {
	s := OpenStudentStore(filepath.Join(t.TempDir(), "students.json"), zerolog.Nop())
	require.NoError(t, s.Insert("S1", models.Student{Password: "p1", YearPage: "/p.html"}))

	require.NoError(t, s.Delete("S1"))

	// Deleting again (and again) is NotFound, never a crash.
	for i := 0; i < 2; i++ {
		err := s.Delete("S1")
		assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	}
}

func TestStudentStorePersistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "students.json")

	s := OpenStudentStore(path, zerolog.Nop())
	require.NoError(t, s.Insert("S1", models.Student{Password: "p1", YearPage: "/p.html"}))
	require.NoError(t, s.Insert("S2", models.Student{Password: "p2", YearPage: "/q.html"}))

	// A fresh store over the same file sees the same collection.
	reloaded := OpenStudentStore(path, zerolog.Nop())
	entries := reloaded.List()
	require.Len(t, entries, 2)
	assert.Equal(t, "S1", entries[0].ID)
	assert.Equal(t, "S2", entries[1].ID)
}

func TestStudentStoreSaveFailureKeepsMemory(t *testing.T) {
	// Backing path inside a directory that does not exist: every save fails.
	path := filepath.Join(t.TempDir(), "nope", "students.json")
	s := OpenStudentStore(path, zerolog.Nop())

	err := s.Insert("S1", models.Student{Password: "p1", YearPage: "/p.html"})
	require.True(t, errors.Is(err, apperrors.ErrPersistence))

	// Fail-open: the in-memory mutation is kept even though disk is behind.
	got, ok := s.Get("S1")
	assert.True(t, ok)
	assert.Equal(t, "p1", got.Password)
}
