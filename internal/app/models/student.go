package models

// Student is one roster entry. The collection is persisted as a JSON object
// keyed by student ID, so the ID itself lives outside the record.
//
// Passwords are stored in plaintext and compared by exact string equality.
// That is the documented behavior of the student scheme, not an oversight;
// upgrading it to hashing would be a deliberate behavior change.
type Student struct {
	Password string `json:"password"`
	YearPage string `json:"yearPage"`
}
