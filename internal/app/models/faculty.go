package models

// Subject is one teaching assignment of a faculty member. Codes are unique
// within a member and correlate with announcement/material visibility.
type Subject struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Faculty represents a faculty member. Records are seeded once at first
// startup and are read-only through the API thereafter: identity resolution
// only, no create/update/delete.
type Faculty struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Password string    `json:"password"` // bcrypt hash
	Subjects []Subject `json:"subjects"`
}

// TeachesSubject reports whether the member is assigned the given code.
func (f *Faculty) TeachesSubject(code string) bool {
	for _, s := range f.Subjects {
		if s.Code == code {
			return true
		}
	}
	return false
}

// SubjectCodes returns the member's subject codes in assignment order.
func (f *Faculty) SubjectCodes() []string {
	codes := make([]string, 0, len(f.Subjects))
	for _, s := range f.Subjects {
		codes = append(codes, s.Code)
	}
	return codes
}
