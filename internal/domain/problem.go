package domain

import "time"

// Problem represents a programming exercise loaded from the judge. Descriptive
// fields are display-only; ProblemID is what the workspace core consumes.
type Problem struct {
	ProblemID      string    `json:"problemId"`
	Name           string    `json:"name"`
	Lab            string    `json:"lab"`
	Tags           []string  `json:"tags"`
	Content        string    `json:"content"`
	Points         int       `json:"points"`
	InputsJSON     []string  `json:"inputsJson"`
	OutputsJSON    []string  `json:"outputsJson"`
	AcceptanceRate float64   `json:"acceptanceRate"`
	CreatedAt      time.Time `json:"createdAt"`
}
