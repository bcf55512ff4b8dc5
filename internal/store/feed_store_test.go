package store

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aimldept/portal/internal/app/models"
	"github.com/aimldept/portal/internal/pkg/apperrors"
)

func newAnnouncement(id, subject, owner string) models.Announcement {
	return models.Announcement{
		ID:          id,
		Title:       "t-" + id,
		Content:     "c-" + id,
		SubjectCode: subject,
		FacultyID:   owner,
		FacultyName: "Faculty " + owner,
		Date:        time.Now().UTC(),
	}
}

func TestFeedStoreOrderAndScoping(t *testing.T) {
	s := OpenFeedStore[models.Announcement](filepath.Join(t.TempDir(), "a.json"), zerolog.Nop())

	require.NoError(t, s.Prepend(newAnnouncement("1", "CS101", "f1")))
	require.NoError(t, s.Prepend(newAnnouncement("2", "CS102", "f2")))
	require.NoError(t, s.Prepend(newAnnouncement("3", "CS101", "f1")))

	t.Run("most recent first", func(t *testing.T) {
		got := s.BySubjects([]string{"CS101"})
		require.Len(t, got, 2)
		assert.Equal(t, "3", got[0].ID)
		assert.Equal(t, "1", got[1].ID)
	})

	t.Run("never returns foreign subjects", func(t *testing.T) {
		got := s.BySubjects([]string{"CS102"})
		require.Len(t, got, 1)
		for _, rec := range got {
			assert.Equal(t, "CS102", rec.SubjectCode)
		}
	})

	t.Run("empty subject set sees nothing", func(t *testing.T) {
		assert.Empty(t, s.BySubjects(nil))
	})
}

func TestFeedStoreRemove(t *testing.T) {
	s := OpenFeedStore[models.Announcement](filepath.Join(t.TempDir(), "a.json"), zerolog.Nop())
	require.NoError(t, s.Prepend(newAnnouncement("1", "CS101", "f1")))

	t.Run("absent ID", func(t *testing.T) {
		err := s.Remove("missing", "f1")
		assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	})

	t.Run("foreign owner is rejected and the record stays", func(t *testing.T) {
		err := s.Remove("1", "f2")
		assert.True(t, errors.Is(err, apperrors.ErrPermissionDenied))
		assert.Equal(t, 1, s.Len())
	})

	t.Run("owner removes", func(t *testing.T) {
		require.NoError(t, s.Remove("1", "f1"))
		assert.Equal(t, 0, s.Len())
	})
}

func TestFeedStorePersistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "m.json")

	s := OpenFeedStore[models.Material](path, zerolog.Nop())
	require.NoError(t, s.Prepend(models.Material{
		ID:          "10",
		Title:       "Notes",
		Link:        "https://example.com/n.pdf",
		SubjectCode: "CS101",
		FacultyID:   "f1",
		FacultyName: "Faculty f1",
		Date:        time.Now().UTC().Truncate(time.Second),
	}))

	reloaded := OpenFeedStore[models.Material](path, zerolog.Nop())
	got := reloaded.BySubjects([]string{"CS101"})
	require.Len(t, got, 1)
	assert.Equal(t, "10", got[0].ID)
	assert.Equal(t, "https://example.com/n.pdf", got[0].Link)
}
