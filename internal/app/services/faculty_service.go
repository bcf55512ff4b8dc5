package services

import (
	"github.com/rs/zerolog"

	"github.com/aimldept/portal/internal/app/models/dto"
	"github.com/aimldept/portal/internal/pkg/apperrors"
	"github.com/aimldept/portal/internal/pkg/auth"
	"github.com/aimldept/portal/internal/store"
)

// FacultyService resolves faculty identity and issues session tokens.
type FacultyService struct {
	faculty    *store.FacultyStore
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewFacultyService creates a new FacultyService.
func NewFacultyService(faculty *store.FacultyStore, jwtService *auth.JWTService, logger zerolog.Logger) *FacultyService {
	return &FacultyService{
		faculty:    faculty,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Login resolves the identifier against faculty ID or email, verifies the
// password against the stored bcrypt hash, and issues a session token. A
// lookup miss and a hash mismatch return the same message, so callers cannot
// probe which identifiers exist. The hash comparison runs on a copy of the
// record, outside any store lock.
func (s *FacultyService) Login(identifier, password string) (string, error) {
	member, ok := s.faculty.FindByIDOrEmail(identifier)
	if !ok {
		return "", apperrors.NewUnauthorizedError("Invalid faculty ID or password")
	}

	if !auth.CheckPassword(member.Password, password) {
		return "", apperrors.NewUnauthorizedError("Invalid faculty ID or password")
	}

	token, err := s.jwtService.GenerateToken(auth.Identity{
		ID:    member.ID,
		Name:  member.Name,
		Email: member.Email,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("facultyId", member.ID).Msg("Failed to issue session token")
		return "", apperrors.NewUnauthorizedError("Invalid faculty ID or password")
	}

	s.logger.Info().Str("facultyId", member.ID).Msg("Faculty logged in")
	return token, nil
}

// GetSelf returns the caller's own record with the password hash stripped.
func (s *FacultyService) GetSelf(identity auth.Identity) (*dto.FacultyResponse, error) {
	member, ok := s.faculty.FindByID(identity.ID)
	if !ok {
		return nil, apperrors.NewNotFoundError("Faculty not found")
	}
	return dto.NewFacultyResponse(member), nil
}
