package workbench

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"gitlab.com/fcv-2025.net/client/internal/core/ports/primary"
	"gitlab.com/fcv-2025.net/client/internal/core/ports/secondary"
	"gitlab.com/fcv-2025.net/client/internal/core/services/history"
	"gitlab.com/fcv-2025.net/client/internal/core/services/session"
	"gitlab.com/fcv-2025.net/client/internal/domain"
	"gitlab.com/fcv-2025.net/client/internal/static/errs"
	"gitlab.com/fcv-2025.net/client/internal/workspace"
)

const (
	consoleRunning    = "Running..."
	consoleSubmitting = "Submitting..."
	consoleAuthError  = "Auth error: Please log in again."
	consoleNoProblem  = "No problem loaded."

	refreshTimeout = 10 * time.Second
)

var _ IWorkbenchService = (*Workbench)(nil)

// Workbench implements the IWorkbenchService interface
type Workbench struct {
	mu      sync.Mutex
	state   domain.ActionState
	console *ConsoleLog

	problem *domain.Problem
	fileSet *workspace.FileSet

	session session.ISessionService
	gateway secondary.JudgeGateway
	history history.IHistoryService
	logger  primary.Logger
}

// NewWorkbench creates the orchestrator for one open problem
func NewWorkbench(
	problem *domain.Problem,
	fileSet *workspace.FileSet,
	sessionSvc session.ISessionService,
	gateway secondary.JudgeGateway,
	historySvc history.IHistoryService,
	logger primary.Logger,
) *Workbench {
	return &Workbench{
		console: NewConsoleLog(),
		problem: problem,
		fileSet: fileSet,
		session: sessionSvc,
		gateway: gateway,
		history: historySvc,
		logger:  logger,
	}
}

// Run compiles and executes the current files against the sample input
func (w *Workbench) Run(ctx context.Context) error {
	return w.execute(ctx, domain.ActionRun)
}

// Submit sends the current files for grading
func (w *Workbench) Submit(ctx context.Context) error {
	return w.execute(ctx, domain.ActionSubmit)
}

func (w *Workbench) execute(ctx context.Context, kind domain.ActionKind) error {
	payload, credential, err := w.begin(kind)
	if err != nil {
		return err
	}
	// Back to Idle no matter how the round trip ends, including a malformed
	// response body; a stuck InFlight state would wedge the workspace.
	defer w.finish()

	var message string
	switch kind {
	case domain.ActionSubmit:
		message, err = w.gateway.AddSubmission(ctx, payload, credential)
	default:
		message, err = w.gateway.RunCode(ctx, payload, credential)
	}

	if err != nil {
		w.console.Reset(fmt.Sprintf("Error: %v", err))
		w.logger.Error("Action failed", "kind", kind, "problemId", payload.ProblemID, "error", err)
		return err
	}

	// The judge replies with one human-readable message; the console shows
	// exactly that, replacing the marker line.
	w.console.Reset(message)
	w.logger.Info("Action completed", "kind", kind, "problemId", payload.ProblemID)

	if kind == domain.ActionSubmit {
		w.refreshAfterSubmit(payload.ProblemID)
	}
	return nil
}

// begin performs the local guards and the Idle -> InFlight transition. The
// payload is snapshotted here and never re-read mid-flight, so the user can
// keep editing while the action runs.
func (w *Workbench) begin(kind domain.ActionKind) (*domain.SubmissionPayload, string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state.InFlight {
		// The UI disables its triggers while in flight; this guard also
		// rejects double-invocation from rapid input.
		return nil, "", errs.ActionInFlight
	}

	// Identity and credential are re-read at every action start, not cached,
	// so login/logout during editing takes effect immediately.
	if w.session.Identity() == nil {
		w.console.Reset(consoleAuthError)
		return nil, "", errs.AuthMissing
	}

	payload, err := BuildSubmissionPayload(w.fileSet.Snapshot(), w.session.CurrentUser(), w.problemID())
	if err != nil {
		switch {
		case errors.Is(err, errs.ContextMissing):
			w.console.Reset(consoleNoProblem)
		default:
			w.console.Reset(consoleAuthError)
		}
		return nil, "", err
	}

	w.state = domain.ActionState{Kind: kind, StartedAt: time.Now(), InFlight: true}
	if kind == domain.ActionSubmit {
		w.console.Reset(consoleSubmitting)
	} else {
		w.console.Reset(consoleRunning)
	}
	return payload, w.session.Credential(), nil
}

func (w *Workbench) finish() {
	w.mu.Lock()
	w.state = domain.ActionState{}
	w.mu.Unlock()
}

// refreshAfterSubmit re-fetches the submission history and the cached user.
// Fire-and-forget: the submit call has already completed, and the refresh
// carries its own bounded context.
func (w *Workbench) refreshAfterSubmit(problemID string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
		defer cancel()

		if err := w.history.Refresh(ctx, problemID); err != nil {
			w.logger.Error("Post-submit history refresh failed", "problemId", problemID, "error", err)
		}
		if err := w.session.RefreshUser(ctx); err != nil {
			w.logger.Error("Post-submit user refresh failed", "error", err)
		}
	}()
}

// Console returns the current console lines
func (w *Workbench) Console() []string {
	return w.console.Lines()
}

// State returns the current action state
func (w *Workbench) State() domain.ActionState {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// Problem returns the problem this workbench was opened for
func (w *Workbench) Problem() *domain.Problem {
	return w.problem
}

// FileSet returns the live file set
func (w *Workbench) FileSet() *workspace.FileSet {
	return w.fileSet
}

func (w *Workbench) problemID() string {
	if w.problem == nil {
		return ""
	}
	return w.problem.ProblemID
}
