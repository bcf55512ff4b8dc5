package services

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aimldept/portal/internal/app/models"
	"github.com/aimldept/portal/internal/app/models/dto"
	"github.com/aimldept/portal/internal/pkg/apperrors"
	"github.com/aimldept/portal/internal/pkg/auth"
	"github.com/aimldept/portal/internal/store"
)

var (
	teacherCS101 = auth.Identity{ID: "faculty_CS101", Name: "Faculty CS101", Email: "faculty_CS101@example.com"}
	teacherCS102 = auth.Identity{ID: "faculty_CS102", Name: "Faculty CS102", Email: "faculty_CS102@example.com"}
)

func newAnnouncementService(t *testing.T) *AnnouncementService {
	t.Helper()
	faculty, _ := newFacultyFixture(t)
	announcements := store.OpenFeedStore[models.Announcement](filepath.Join(t.TempDir(), "a.json"), zerolog.Nop())
	return NewAnnouncementService(announcements, faculty, zerolog.Nop())
}

func newMaterialService(t *testing.T) *MaterialService {
	t.Helper()
	faculty, _ := newFacultyFixture(t)
	materials := store.OpenFeedStore[models.Material](filepath.Join(t.TempDir(), "m.json"), zerolog.Nop())
	return NewMaterialService(materials, faculty, zerolog.Nop())
}

func TestAnnouncementCreateAndScoping(t *testing.T) {
	svc := newAnnouncementService(t)

	created, err := svc.Create(teacherCS101, &dto.CreateAnnouncementRequest{
		Title: "Midterm", Content: "Chapters 1-5", SubjectCode: "CS101",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "faculty_CS101", created.FacultyID)
	assert.Equal(t, "Faculty CS101", created.FacultyName, "name is denormalized from the store, not the token")
	assert.False(t, created.Date.IsZero())

	t.Run("owner sees it", func(t *testing.T) {
		list, err := svc.List(teacherCS101)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, created.ID, list[0].ID)
	})

	t.Run("faculty without the subject does not", func(t *testing.T) {
		list, err := svc.List(teacherCS102)
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("unknown identity", func(t *testing.T) {
		_, err := svc.List(auth.Identity{ID: "gone"})
		assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	})
}

func TestAnnouncementCreateValidationPrecedesAuthorization(t *testing.T) {
	svc := newAnnouncementService(t)

	// CS102's teacher would not be authorized for CS101 either way, but a
	// missing field must be reported as 400 before the 403 is considered.
	_, err := svc.Create(teacherCS102, &dto.CreateAnnouncementRequest{
		Title: "", Content: "body", SubjectCode: "CS101",
	})
	assert.True(t, errors.Is(err, apperrors.ErrBadRequest))

	_, err = svc.Create(teacherCS102, &dto.CreateAnnouncementRequest{
		Title: "t", Content: "body", SubjectCode: "CS101",
	})
	assert.True(t, errors.Is(err, apperrors.ErrPermissionDenied))
}

func TestAnnouncementDeleteOwnership(t *testing.T) {
	svc := newAnnouncementService(t)

	created, err := svc.Create(teacherCS101, &dto.CreateAnnouncementRequest{
		Title: "t", Content: "c", SubjectCode: "CS101",
	})
	require.NoError(t, err)

	t.Run("foreign faculty cannot delete and the record stays", func(t *testing.T) {
		err := svc.Delete(teacherCS102, created.ID)
		assert.True(t, errors.Is(err, apperrors.ErrPermissionDenied))

		list, err := svc.List(teacherCS101)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("unknown ID", func(t *testing.T) {
		err := svc.Delete(teacherCS101, "missing")
		assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	})

	t.Run("owner deletes", func(t *testing.T) {
		require.NoError(t, svc.Delete(teacherCS101, created.ID))
		list, err := svc.List(teacherCS101)
		require.NoError(t, err)
		assert.Empty(t, list)
	})
}

func TestAnnouncementListOrder(t *testing.T) {
	svc := newAnnouncementService(t)

	// Distinct timestamps so the time-based IDs cannot collide.
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	ticks := 0
	svc.now = func() time.Time {
		ticks++
		return base.Add(time.Duration(ticks) * time.Millisecond)
	}

	for _, title := range []string{"first", "second", "third"} {
		_, err := svc.Create(teacherCS101, &dto.CreateAnnouncementRequest{
			Title: title, Content: "c", SubjectCode: "CS101",
		})
		require.NoError(t, err)
	}

	list, err := svc.List(teacherCS101)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "third", list[0].Title)
	assert.Equal(t, "first", list[2].Title)
}

func TestMaterialService(t *testing.T) {
	svc := newMaterialService(t)

	t.Run("required fields before authorization", func(t *testing.T) {
		_, err := svc.Create(teacherCS101, &dto.CreateMaterialRequest{
			SubjectCode: "CS101", Title: "notes", Link: "",
		})
		assert.True(t, errors.Is(err, apperrors.ErrBadRequest))
	})

	t.Run("unassigned subject is forbidden", func(t *testing.T) {
		_, err := svc.Create(teacherCS101, &dto.CreateMaterialRequest{
			SubjectCode: "CS102", Title: "notes", Link: "https://example.com/n.pdf",
		})
		assert.True(t, errors.Is(err, apperrors.ErrPermissionDenied))
	})

	created, err := svc.Create(teacherCS101, &dto.CreateMaterialRequest{
		SubjectCode: "CS101", Title: "notes", Link: "https://example.com/n.pdf",
	})
	require.NoError(t, err)
	assert.Equal(t, "", created.Description, "omitted description defaults to empty")

	t.Run("visible only to assigned faculty", func(t *testing.T) {
		mine, err := svc.List(teacherCS101)
		require.NoError(t, err)
		assert.Len(t, mine, 1)

		theirs, err := svc.List(teacherCS102)
		require.NoError(t, err)
		assert.Empty(t, theirs)
	})

	t.Run("owner-only delete", func(t *testing.T) {
		err := svc.Delete(teacherCS102, created.ID)
		assert.True(t, errors.Is(err, apperrors.ErrPermissionDenied))
		require.NoError(t, svc.Delete(teacherCS101, created.ID))
	})
}
