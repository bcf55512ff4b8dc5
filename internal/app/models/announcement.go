package models

import "time"

// Announcement is a subject-scoped post. Visibility is limited to faculty
// whose subject set includes SubjectCode; only the creating faculty member
// may delete it.
type Announcement struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	SubjectCode string    `json:"subjectCode"`
	FacultyID   string    `json:"facultyId"`
	FacultyName string    `json:"facultyName"`
	Date        time.Time `json:"date"`
}

// RecordID implements store.FeedRecord.
func (a Announcement) RecordID() string { return a.ID }

// OwnerID implements store.FeedRecord.
func (a Announcement) OwnerID() string { return a.FacultyID }

// Subject implements store.FeedRecord.
func (a Announcement) Subject() string { return a.SubjectCode }
