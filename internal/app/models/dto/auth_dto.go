package dto

// StudentLoginRequest carries student login credentials. The same endpoint
// doubles as the admin login: the reserved sentinel ID plus the admin secret
// short-circuits to the admin path before any student lookup. Fields are not
// marked required on purpose: a missing field fails the credential check and
// yields the same 401 as a wrong one.
type StudentLoginRequest struct {
	StudentID string `json:"studentId"`
	Password  string `json:"password"`
}

// StudentLoginResponse carries the year-page redirect target.
type StudentLoginResponse struct {
	Redirect string `json:"redirect"`
}

// AdminLoginResponse is the admin-session signal returned when the sentinel
// login matches. The admin key is echoed back for the admin console to use on
// subsequent roster calls.
type AdminLoginResponse struct {
	Admin    bool   `json:"admin"`
	AdminKey string `json:"adminKey"`
	Redirect string `json:"redirect"`
}

// ChangePasswordRequest carries a student self-service password change.
type ChangePasswordRequest struct {
	StudentID   string `json:"studentId"`
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// FacultyLoginRequest carries faculty login credentials. FacultyID accepts
// either the faculty ID or the email alias.
type FacultyLoginRequest struct {
	FacultyID string `json:"facultyId"`
	Password  string `json:"password"`
}

// TokenResponse carries an issued session token.
type TokenResponse struct {
	Token string `json:"token"`
}
