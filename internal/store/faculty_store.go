package store

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/aimldept/portal/internal/app/models"
)

// FacultyStore owns the faculty collection and its JSON mirror. The
// collection is read-only after startup; seeding is the only mutation and
// happens once, when no backing file exists yet.
type FacultyStore struct {
	mu      sync.RWMutex
	file    *jsonFile[[]models.Faculty]
	faculty []models.Faculty
}

// OpenFacultyStore loads the faculty collection from path. When the file does
// not exist, seed is invoked to build the initial collection, which is then
// persisted. A malformed file yields an empty collection without reseeding.
func OpenFacultyStore(path string, seed func() []models.Faculty, logger zerolog.Logger) *FacultyStore {
	s := &FacultyStore{
		file: newJSONFile[[]models.Faculty](path, logger),
	}
	if found := s.file.Load(&s.faculty); !found && seed != nil {
		s.faculty = seed()
		if err := s.file.Save(s.faculty); err != nil {
			logger.Error().Err(err).Str("path", path).Msg("Failed to persist seeded faculty records")
		} else {
			logger.Info().Int("count", len(s.faculty)).Msg("Seeded default faculty records")
		}
	}
	return s
}

// FindByID returns a copy of the member with the given ID.
func (s *FacultyStore) FindByID(id string) (models.Faculty, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, f := range s.faculty {
		if f.ID == id {
			return f, true
		}
	}
	return models.Faculty{}, false
}

// FindByIDOrEmail resolves a login identifier against the faculty ID or the
// email alias, first match wins.
func (s *FacultyStore) FindByIDOrEmail(identifier string) (models.Faculty, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, f := range s.faculty {
		if f.ID == identifier || f.Email == identifier {
			return f, true
		}
	}
	return models.Faculty{}, false
}
