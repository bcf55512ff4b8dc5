package models

import "time"

// Material is a course material post: announcement shape plus a link and an
// optional description. Same ownership and visibility rules.
type Material struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Link        string    `json:"link"`
	Description string    `json:"description"`
	SubjectCode string    `json:"subjectCode"`
	FacultyID   string    `json:"facultyId"`
	FacultyName string    `json:"facultyName"`
	Date        time.Time `json:"date"`
}

// RecordID implements store.FeedRecord.
func (m Material) RecordID() string { return m.ID }

// OwnerID implements store.FeedRecord.
func (m Material) OwnerID() string { return m.FacultyID }

// Subject implements store.FeedRecord.
func (m Material) Subject() string { return m.SubjectCode }
