package secondary

import (
	"context"

	"gitlab.com/fcv-2025.net/client/internal/domain"
)

// JudgeGateway is the secondary port to the remote compiler/judge service.
// Every call re-sends the bearer credential taken at action start.
type JudgeGateway interface {
	// RunCode compiles and executes the payload against the sample input and
	// returns the judge's human-readable message
	RunCode(ctx context.Context, payload *domain.SubmissionPayload, credential string) (string, error)

	// AddSubmission submits the payload for grading and returns the judge's
	// human-readable message
	AddSubmission(ctx context.Context, payload *domain.SubmissionPayload, credential string) (string, error)

	// GetProblem retrieves a problem by ID
	GetProblem(ctx context.Context, credential, problemID string) (*domain.Problem, error)

	// GetUser retrieves the judge-side user record for the given identity
	GetUser(ctx context.Context, credential, username, email string) (*domain.User, error)

	// GetSubmissions retrieves the submission records for a problem
	GetSubmissions(ctx context.Context, credential, problemID string) ([]*domain.SubmissionRecord, error)
}
