package domain

import "time"

// SubmissionStatus represents the verdict the judge attached to a submission
type SubmissionStatus string

const (
	SubmissionAccepted SubmissionStatus = "Accepted"
	SubmissionRejected SubmissionStatus = "Rejected"
)

// SubmissionPayload is the wire-ready body for run and submit requests. It is
// derived, never stored: rebuilt fresh from the live FileSet on every action so
// edits made between a run and a submit are always reflected.
type SubmissionPayload struct {
	SourceCode   map[string]string `json:"sourceCode"`
	NamesOfFiles []string          `json:"namesOfFiles"`
	UserID       string            `json:"userId"`
	ProblemID    string            `json:"problemId"`
}

// SubmissionRecord is a past submission as reported by the judge. The judge
// owns these; the client holds a read-only cached copy.
type SubmissionRecord struct {
	SubmissionID string           `json:"submissionId"`
	UserID       string           `json:"userId"`
	ProblemID    string           `json:"problemId"`
	Content      string           `json:"content"`
	Status       SubmissionStatus `json:"status"`
	Message      string           `json:"message"`
	SubmittedAt  time.Time        `json:"submittedAt"`
}

// IsAccepted reports whether the judge accepted the submission. Any status
// other than Accepted counts as rejected/other.
func (r *SubmissionRecord) IsAccepted() bool {
	return r.Status == SubmissionAccepted
}
