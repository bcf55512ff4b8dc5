package services

import (
	"errors"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/aimldept/portal/internal/app/models"
	"github.com/aimldept/portal/internal/app/models/dto"
	"github.com/aimldept/portal/internal/pkg/apperrors"
	"github.com/aimldept/portal/internal/pkg/auth"
	"github.com/aimldept/portal/internal/store"
)

// newRecordID derives a time-based unique record ID, millisecond resolution.
func newRecordID(t time.Time) string {
	return strconv.FormatInt(t.UnixMilli(), 10)
}

// AnnouncementService provides ownership-scoped CRUD over the announcement
// collection, filtered by the caller's subject assignments.
type AnnouncementService struct {
	announcements *store.FeedStore[models.Announcement]
	faculty       *store.FacultyStore
	logger        zerolog.Logger
	now           func() time.Time
}

// NewAnnouncementService creates a new AnnouncementService.
func NewAnnouncementService(
	announcements *store.FeedStore[models.Announcement],
	faculty *store.FacultyStore,
	logger zerolog.Logger,
) *AnnouncementService {
	return &AnnouncementService{
		announcements: announcements,
		faculty:       faculty,
		logger:        logger,
		now:           time.Now,
	}
}

// List returns, most-recent-first, the announcements whose subject code is in
// the caller's subject set.
func (s *AnnouncementService) List(identity auth.Identity) ([]models.Announcement, error) {
	member, ok := s.faculty.FindByID(identity.ID)
	if !ok {
		return nil, apperrors.NewNotFoundError("Faculty not found")
	}
	return s.announcements.BySubjects(member.SubjectCodes()), nil
}

// Create posts a new announcement. Field presence is checked before the
// subject authorization, so malformed input is reported even when the caller
// would not have been authorized.
func (s *AnnouncementService) Create(identity auth.Identity, req *dto.CreateAnnouncementRequest) (*models.Announcement, error) {
	if req.Title == "" || req.Content == "" || req.SubjectCode == "" {
		return nil, apperrors.NewBadRequestError("Title, content, and subject code are required")
	}

	member, ok := s.faculty.FindByID(identity.ID)
	if !ok || !member.TeachesSubject(req.SubjectCode) {
		return nil, apperrors.NewForbiddenError("You are not authorized to post for this subject")
	}

	now := s.now()
	announcement := models.Announcement{
		ID:          newRecordID(now),
		Title:       req.Title,
		Content:     req.Content,
		SubjectCode: req.SubjectCode,
		FacultyID:   member.ID,
		FacultyName: member.Name,
		Date:        now.UTC(),
	}

	if err := s.announcements.Prepend(announcement); err != nil {
		return nil, err
	}
	s.logger.Info().Str("facultyId", member.ID).Str("subjectCode", req.SubjectCode).Msg("Announcement posted")
	return &announcement, nil
}

// Delete removes an announcement, owner only.
func (s *AnnouncementService) Delete(identity auth.Identity, id string) error {
	err := s.announcements.Remove(id, identity.ID)
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return apperrors.NewNotFoundError("Announcement not found")
	case errors.Is(err, apperrors.ErrPermissionDenied):
		return apperrors.NewForbiddenError("You are not authorized to delete this announcement")
	case err != nil:
		return err
	}
	s.logger.Info().Str("facultyId", identity.ID).Str("announcementId", id).Msg("Announcement deleted")
	return nil
}
