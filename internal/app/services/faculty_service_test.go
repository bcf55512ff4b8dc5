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
	"github.com/aimldept/portal/internal/pkg/apperrors"
	"github.com/aimldept/portal/internal/pkg/auth"
	"github.com/aimldept/portal/internal/store"
)

func newFacultyFixture(t *testing.T) (*store.FacultyStore, *auth.JWTService) {
	t.Helper()

	hash, err := auth.HashPassword("secret123")
	require.NoError(t, err)

	seed := func() []models.Faculty {
		return []models.Faculty{
			{
				ID:       "faculty_CS101",
				Name:     "Faculty CS101",
				Email:    "faculty_CS101@example.com",
				Password: hash,
				Subjects: []models.Subject{{Code: "CS101", Name: "CS101"}},
			},
			{
				ID:       "faculty_CS102",
				Name:     "Faculty CS102",
				Email:    "faculty_CS102@example.com",
				Password: hash,
				Subjects: []models.Subject{{Code: "CS102", Name: "CS102"}},
			},
		}
	}

	faculty := store.OpenFacultyStore(filepath.Join(t.TempDir(), "faculty.json"), seed, zerolog.Nop())
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    8 * time.Hour,
		TokenIssuer: "portal.test",
	})
	return faculty, jwtService
}

func TestFacultyLogin(t *testing.T) {
	faculty, jwtService := newFacultyFixture(t)
	svc := NewFacultyService(faculty, jwtService, zerolog.Nop())

	t.Run("by faculty ID", func(t *testing.T) {
		token, err := svc.Login("faculty_CS101", "secret123")
		require.NoError(t, err)

		claims, err := jwtService.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "faculty_CS101", claims.FacultyID)
		assert.Equal(t, "Faculty CS101", claims.Name)
	})

	t.Run("by email alias", func(t *testing.T) {
		token, err := svc.Login("faculty_CS101@example.com", "secret123")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
	})

	t.Run("unknown identifier and wrong password are indistinguishable", func(t *testing.T) {
		_, errUnknown := svc.Login("nobody", "secret123")
		_, errWrongPw := svc.Login("faculty_CS101", "wrong")

		require.Error(t, errUnknown)
		require.Error(t, errWrongPw)
		assert.True(t, errors.Is(errUnknown, apperrors.ErrInvalidCredentials))
		assert.True(t, errors.Is(errWrongPw, apperrors.ErrInvalidCredentials))
		assert.Equal(t, errUnknown.Error(), errWrongPw.Error())
	})
}

func TestFacultyGetSelf(t *testing.T) {
	faculty, jwtService := newFacultyFixture(t)
	svc := NewFacultyService(faculty, jwtService, zerolog.Nop())

	t.Run("returns the record without the password hash", func(t *testing.T) {
		profile, err := svc.GetSelf(auth.Identity{ID: "faculty_CS101"})
		require.NoError(t, err)
		assert.Equal(t, "faculty_CS101", profile.ID)
		assert.Equal(t, "faculty_CS101@example.com", profile.Email)
		assert.Equal(t, []models.Subject{{Code: "CS101", Name: "CS101"}}, profile.Subjects)
	})

	t.Run("unknown identity", func(t *testing.T) {
		_, err := svc.GetSelf(auth.Identity{ID: "gone"})
		assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	})
}
