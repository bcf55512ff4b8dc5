package services

import (
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/aimldept/portal/internal/app/models"
	"github.com/aimldept/portal/internal/app/models/dto"
	"github.com/aimldept/portal/internal/pkg/apperrors"
	"github.com/aimldept/portal/internal/pkg/auth"
	"github.com/aimldept/portal/internal/store"
)

// MaterialService provides ownership-scoped CRUD over the course material
// collection. Same shape as announcements, plus a link and an optional
// description.
type MaterialService struct {
	materials *store.FeedStore[models.Material]
	faculty   *store.FacultyStore
	logger    zerolog.Logger
	now       func() time.Time
}

// NewMaterialService creates a new MaterialService.
func NewMaterialService(
	materials *store.FeedStore[models.Material],
	faculty *store.FacultyStore,
	logger zerolog.Logger,
) *MaterialService {
	return &MaterialService{
		materials: materials,
		faculty:   faculty,
		logger:    logger,
		now:       time.Now,
	}
}

// List returns, most-recent-first, the materials whose subject code is in the
// caller's subject set.
func (s *MaterialService) List(identity auth.Identity) ([]models.Material, error) {
	member, ok := s.faculty.FindByID(identity.ID)
	if !ok {
		return nil, apperrors.NewNotFoundError("Faculty not found")
	}
	return s.materials.BySubjects(member.SubjectCodes()), nil
}

// Create posts a new material. Field presence is checked before the subject
// authorization.
func (s *MaterialService) Create(identity auth.Identity, req *dto.CreateMaterialRequest) (*models.Material, error) {
	if req.SubjectCode == "" || req.Title == "" || req.Link == "" {
		return nil, apperrors.NewBadRequestError("Subject code, title, and link are required")
	}

	member, ok := s.faculty.FindByID(identity.ID)
	if !ok || !member.TeachesSubject(req.SubjectCode) {
		return nil, apperrors.NewForbiddenError("You are not authorized to add materials for this subject")
	}

	now := s.now()
	material := models.Material{
		ID:          newRecordID(now),
		Title:       req.Title,
		Link:        req.Link,
		Description: req.Description,
		SubjectCode: req.SubjectCode,
		FacultyID:   member.ID,
		FacultyName: member.Name,
		Date:        now.UTC(),
	}

	if err := s.materials.Prepend(material); err != nil {
		return nil, err
	}
	s.logger.Info().Str("facultyId", member.ID).Str("subjectCode", req.SubjectCode).Msg("Material added")
	return &material, nil
}

// Delete removes a material, owner only.
func (s *MaterialService) Delete(identity auth.Identity, id string) error {
	err := s.materials.Remove(id, identity.ID)
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return apperrors.NewNotFoundError("Material not found")
	case errors.Is(err, apperrors.ErrPermissionDenied):
		return apperrors.NewForbiddenError("You are not authorized to delete this material")
	case err != nil:
		return err
	}
	s.logger.Info().Str("facultyId", identity.ID).Str("materialId", id).Msg("Material deleted")
	return nil
}
