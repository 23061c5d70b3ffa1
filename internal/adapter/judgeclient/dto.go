package judgeclient

import (
	"encoding/json"
	"time"

	"gitlab.com/fcv-2025.net/client/internal/domain"
)

// actionResponse is the judge's reply to runCode/addSubmission. A well-formed
// body carrying flag=false is an application-level failure.
type actionResponse struct {
	Message string `json:"message"`
	Flag    *bool  `json:"flag"`
}

// getUserRequest matches the judge's getUser contract
type getUserRequest struct {
	Username string `json:"Username"`
	Email    string `json:"Email"`
}

type getUserResponse struct {
	Flag    *bool        `json:"flag"`
	Message string       `json:"message"`
	User    *domain.User `json:"user"`
}

// problemDTO mirrors the judge's problem shape. Sequence-valued fields may
// arrive as bare arrays or $values envelopes, so they stay raw until
// normalized.
type problemDTO struct {
	ProblemID      string          `json:"problemId"`
	Name           string          `json:"name"`
	Lab            string          `json:"lab"`
	Tags           json.RawMessage `json:"tags"`
	Content        string          `json:"content"`
	Points         int             `json:"points"`
	InputsJSON     json.RawMessage `json:"inputsJson"`
	OutputsJSON    json.RawMessage `json:"outputsJson"`
	AcceptanceRate float64         `json:"acceptanceRate"`
	CreatedAt      time.Time       `json:"createdAt"`
}

type getProblemResponse struct {
	Problem *problemDTO `json:"problem"`
}

type submissionDTO struct {
	SubmissionID string    `json:"submissionId"`
	UserID       string    `json:"userId"`
	ProblemID    string    `json:"problemId"`
	Content      string    `json:"content"`
	Status       string    `json:"status"`
	Message      string    `json:"message"`
	SubmittedAt  time.Time `json:"submittedAt"`
}

func (d submissionDTO) toDomain() *domain.SubmissionRecord {
	return &domain.SubmissionRecord{
		SubmissionID: d.SubmissionID,
		UserID:       d.UserID,
		ProblemID:    d.ProblemID,
		Content:      d.Content,
		Status:       domain.SubmissionStatus(d.Status),
		Message:      d.Message,
		SubmittedAt:  d.SubmittedAt,
	}
}
