package dto

import "github.com/aimldept/portal/internal/app/models"

// FacultyResponse is a faculty record with the password hash stripped.
type FacultyResponse struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Email    string           `json:"email"`
	Subjects []models.Subject `json:"subjects"`
}

// NewFacultyResponse builds the response from a faculty record.
func NewFacultyResponse(f models.Faculty) *FacultyResponse {
	return &FacultyResponse{
		ID:       f.ID,
		Name:     f.Name,
		Email:    f.Email,
		Subjects: f.Subjects,
	}
}
