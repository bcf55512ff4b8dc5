package dto

// CreateAnnouncementRequest carries a new announcement post. Field presence
// is validated before the subject authorization check.
type CreateAnnouncementRequest struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	SubjectCode string `json:"subjectCode"`
}

// CreateMaterialRequest carries a new course material post. Description is
// optional and defaults to an empty string.
type CreateMaterialRequest struct {
	SubjectCode string `json:"subjectCode"`
	Title       string `json:"title"`
	Link        string `json:"link"`
	Description string `json:"description"`
}
