package workbench

import (
	"context"

	"gitlab.com/fcv-2025.net/client/internal/domain"
	"gitlab.com/fcv-2025.net/client/internal/workspace"
)

// IWorkbenchService is the orchestrator for one open problem: it owns the
// action state machine and the console, and drives run/submit requests
// against the judge. At most one action is in flight at a time; a request
// while one is outstanding is rejected locally.
type IWorkbenchService interface {
	// Run compiles and executes the current files against the sample input.
	// Every failure surfaces as at least one console line.
	Run(ctx context.Context) error

	// Submit sends the current files for grading. On success it triggers an
	// asynchronous refresh of the submission history and the cached user;
	// Submit itself returns independent of that refresh.
	Submit(ctx context.Context) error

	// Console returns the current console lines
	Console() []string

	// State returns the current action state
	State() domain.ActionState

	// Problem returns the problem this workbench was opened for
	Problem() *domain.Problem

	// FileSet returns the live file set
	FileSet() *workspace.FileSet
}
