package dto

// StudentResponse is one roster entry in the admin list. The password is
// included, matching the admin console contract; this is a known disclosure
// risk of the roster API.
type StudentResponse struct {
	ID       string `json:"id"`
	Password string `json:"password"`
	YearPage string `json:"yearPage"`
}

// AddStudentRequest carries a new roster entry.
type AddStudentRequest struct {
	ID       string `json:"id"`
	Password string `json:"password"`
	YearPage string `json:"yearPage"`
}

// UpdateStudentRequest carries a partial roster update. Empty fields are
// treated as omitted and leave the stored value unchanged.
type UpdateStudentRequest struct {
	Password string `json:"password"`
	YearPage string `json:"yearPage"`
}
