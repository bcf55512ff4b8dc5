package services

import (
	"github.com/rs/zerolog"

	"github.com/aimldept/portal/internal/app/models"
	"github.com/aimldept/portal/internal/app/models/dto"
	"github.com/aimldept/portal/internal/pkg/apperrors"
	"github.com/aimldept/portal/internal/store"
)

// AdminSentinelID is the reserved student ID that routes a login attempt into
// the admin authentication path instead of a student lookup.
const AdminSentinelID = "AiMl"

// StudentLoginResult distinguishes the two outcomes of the shared login
// endpoint: a student redirect, or the admin-session signal.
type StudentLoginResult struct {
	Admin    bool
	Redirect string
}

// StudentService handles student authentication and the admin-guarded roster
// operations. The admin gate itself (key comparison) lives in the middleware;
// this service assumes it already passed.
type StudentService struct {
	students *store.StudentStore
	adminKey string
	logger   zerolog.Logger
}

// NewStudentService creates a new StudentService.
func NewStudentService(students *store.StudentStore, adminKey string, logger zerolog.Logger) *StudentService {
	return &StudentService{
		students: students,
		adminKey: adminKey,
		logger:   logger,
	}
}

// Login validates student credentials and returns the year-page redirect.
// The sentinel check runs first and never falls through to a student lookup:
// a sentinel attempt with the wrong secret is just an unknown student.
// Unknown ID and wrong password produce the same failure.
func (s *StudentService) Login(id, password string) (*StudentLoginResult, error) {
	if id == AdminSentinelID && password == s.adminKey {
		s.logger.Info().Msg("Admin signed in via sentinel login")
		return &StudentLoginResult{Admin: true, Redirect: "/admin.html"}, nil
	}

	student, ok := s.students.Get(id)
	if !ok || student.Password != password {
		return nil, apperrors.NewUnauthorizedError("Invalid ID or password")
	}
	return &StudentLoginResult{Redirect: student.YearPage}, nil
}

// ChangePassword replaces a student's password after verifying the current
// one. All three fields must be non-empty.
func (s *StudentService) ChangePassword(id, oldPassword, newPassword string) error {
	if id == "" || oldPassword == "" || newPassword == "" {
		return apperrors.NewBadRequestError("All fields are required.")
	}

	student, ok := s.students.Get(id)
	if !ok {
		return apperrors.NewNotFoundError("Student ID not found.")
	}
	if student.Password != oldPassword {
		return apperrors.NewUnauthorizedError("Current password is incorrect.")
	}

	if err := s.students.Update(id, store.StudentUpdate{Password: &newPassword}); err != nil {
		return err
	}
	s.logger.Info().Str("studentId", id).Msg("Student password changed")
	return nil
}

// ListStudents returns the full roster for the admin console.
func (s *StudentService) ListStudents() []dto.StudentResponse {
	entries := s.students.List()
	list := make([]dto.StudentResponse, 0, len(entries))
	for _, e := range entries {
		list = append(list, dto.StudentResponse{
			ID:       e.ID,
			Password: e.Student.Password,
			YearPage: e.Student.YearPage,
		})
	}
	return list
}

// AddStudent inserts a new roster entry. All fields are required; a duplicate
// ID is a conflict.
func (s *StudentService) AddStudent(req *dto.AddStudentRequest) error {
	if req.ID == "" || req.Password == "" || req.YearPage == "" {
		return apperrors.NewBadRequestError("id, password, and yearPage are required")
	}

	err := s.students.Insert(req.ID, models.Student{
		Password: req.Password,
		YearPage: req.YearPage,
	})
	if err != nil {
		return err
	}
	s.logger.Info().Str("studentId", req.ID).Msg("Student added")
	return nil
}

// UpdateStudent applies a partial update; empty fields stay unchanged.
func (s *StudentService) UpdateStudent(id string, req *dto.UpdateStudentRequest) error {
	var update store.StudentUpdate
	if req.Password != "" {
		update.Password = &req.Password
	}
	if req.YearPage != "" {
		update.YearPage = &req.YearPage
	}

	if err := s.students.Update(id, update); err != nil {
		return err
	}
	s.logger.Info().Str("studentId", id).Msg("Student updated")
	return nil
}

// DeleteStudent removes a roster entry.
func (s *StudentService) DeleteStudent(id string) error {
	if err := s.students.Delete(id); err != nil {
		return err
	}
	s.logger.Info().Str("studentId", id).Msg("Student deleted")
	return nil
}
