// Package seed builds the default faculty collection on first startup, when
// no persisted faculty file exists yet: one account per discovered subject
// page, all sharing a default password.
package seed

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/aimldept/portal/internal/app/models"
	"github.com/aimldept/portal/internal/pkg/auth"
)

// DefaultFacultyPassword is the initial password every seeded account gets.
// Members are expected to be handed a changed password out of band.
const DefaultFacultyPassword = "111111"

// DefaultFaculty builds one faculty record per subject code. Each record gets
// the ID faculty_<CODE>, a matching example.com email alias, and a single
// subject assignment named after the code.
func DefaultFaculty(subjectCodes []string, lgr zerolog.Logger) []models.Faculty {
	hash, err := auth.HashPassword(DefaultFacultyPassword)
	if err != nil {
		// bcrypt only fails on an out-of-range cost; treat it as fatal misconfig.
		lgr.Fatal().Err(err).Msg("Failed to hash default faculty password")
	}

	faculty := make([]models.Faculty, 0, len(subjectCodes))
	for _, code := range subjectCodes {
		id := fmt.Sprintf("faculty_%s", code)
		faculty = append(faculty, models.Faculty{
			ID:       id,
			Name:     fmt.Sprintf("Faculty %s", code),
			Email:    fmt.Sprintf("%s@example.com", id),
			Password: hash,
			Subjects: []models.Subject{{Code: code, Name: code}},
		})
	}
	return faculty
}
