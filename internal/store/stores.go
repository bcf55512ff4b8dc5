package store

import (
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/aimldept/portal/internal/app/models"
)

// Paths names the four backing documents inside the data directory.
type Paths struct {
	Dir           string
	Students      string
	Faculty       string
	Announcements string
	Materials     string
}

// Stores holds all the record store instances.
type Stores struct {
	Students      *StudentStore
	Faculty       *FacultyStore
	Announcements *FeedStore[models.Announcement]
	Materials     *FeedStore[models.Material]
}

// Open loads the four collections from disk. seedFaculty builds the initial
// faculty collection when no faculty file exists yet.
func Open(paths Paths, seedFaculty func() []models.Faculty, logger zerolog.Logger) *Stores {
	join := func(name string) string { return filepath.Join(paths.Dir, name) }

	return &Stores{
		Students:      OpenStudentStore(join(paths.Students), logger),
		Faculty:       OpenFacultyStore(join(paths.Faculty), seedFaculty, logger),
		Announcements: OpenFeedStore[models.Announcement](join(paths.Announcements), logger),
		Materials:     OpenFeedStore[models.Material](join(paths.Materials), logger),
	}
}
