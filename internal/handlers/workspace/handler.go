package workspace

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"gitlab.com/fcv-2025.net/client/internal/core/ports/primary"
	"gitlab.com/fcv-2025.net/client/internal/core/ports/secondary"
	"gitlab.com/fcv-2025.net/client/internal/core/services/history"
	"gitlab.com/fcv-2025.net/client/internal/core/services/session"
	"gitlab.com/fcv-2025.net/client/internal/core/services/workbench"
	"gitlab.com/fcv-2025.net/client/internal/handlers"
	"gitlab.com/fcv-2025.net/client/internal/handlers/response"
	"gitlab.com/fcv-2025.net/client/internal/static/errs"
	workspace2 "gitlab.com/fcv-2025.net/client/internal/workspace"
)

// WorkspaceHandler exposes the workspace to the UI. Thin glue only: every
// route delegates to the session, history or workbench service.
type WorkspaceHandler struct {
	session session.ISessionService
	history history.IHistoryService
	gateway secondary.JudgeGateway
	logger  primary.Logger

	mu      sync.Mutex
	fileSet *workspace2.FileSet
	bench   workbench.IWorkbenchService
}

// NewWorkspaceHandler creates a new workspace handler
func NewWorkspaceHandler(
	sessionSvc session.ISessionService,
	historySvc history.IHistoryService,
	gateway secondary.JudgeGateway,
	logger primary.Logger,
) *WorkspaceHandler {
	return &WorkspaceHandler{
		session: sessionSvc,
		history: historySvc,
		gateway: gateway,
		logger:  logger,
	}
}

// RegisterRoutes registers the API routes for WorkspaceHandler
func (h *WorkspaceHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/session/login", h.Login).Methods("POST")
	router.HandleFunc("/api/session/logout", h.Logout).Methods("POST")
	router.HandleFunc("/api/session", h.GetSession).Methods("GET")

	mw := handlers.New(h.session)
	guarded := router.PathPrefix("/api/workspace").Subrouter()
	guarded.Use(mw.SessionRequired)
	guarded.HandleFunc("/open", h.OpenWorkspace).Methods("POST")
	guarded.HandleFunc("/files", h.ListFiles).Methods("GET")
	guarded.HandleFunc("/files", h.AddFile).Methods("POST")
	guarded.HandleFunc("/files/{fileId}", h.UpdateFile).Methods("PUT")
	guarded.HandleFunc("/files/{fileId}/rename", h.RenameFile).Methods("POST")
	guarded.HandleFunc("/files/{fileId}/activate", h.ActivateFile).Methods("POST")
	guarded.HandleFunc("/files/{fileId}", h.RemoveFile).Methods("DELETE")
	guarded.HandleFunc("/run", h.Run).Methods("POST")
	guarded.HandleFunc("/submit", h.Submit).Methods("POST")
	guarded.HandleFunc("/console", h.GetConsole).Methods("GET")
	guarded.HandleFunc("/submissions", h.ListSubmissions).Methods("GET")
	guarded.HandleFunc("/submissions/{submissionId}/restore", h.RestoreSubmission).Methods("POST")
}

// Login adopts a bearer token obtained from the judge's login endpoint
func (h *WorkspaceHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	claims, err := h.session.Login(r.Context(), req.Token)
	if err != nil {
		response.WriteError(w, response.ErrorMessage{
			Message:    err.Error(),
			StatusCode: http.StatusUnauthorized,
		})
		return
	}
	response.WriteSuccess(w, SessionResponse{Identity: claims})
}

// Logout clears the session
func (h *WorkspaceHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.session.Logout(r.Context()); err != nil {
		h.logger.Error("Logout failed", "error", err)
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetSession describes the current session
func (h *WorkspaceHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	response.WriteSuccess(w, SessionResponse{
		Identity: h.session.Identity(),
		User:     h.session.CurrentUser(),
	})
}

// OpenWorkspace loads a problem, seeds a fresh file set and refreshes the
// user record and the submission history for it
func (h *WorkspaceHandler) OpenWorkspace(w http.ResponseWriter, r *http.Request) {
	var req OpenWorkspaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ProblemID == "" {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	problem, err := h.gateway.GetProblem(r.Context(), h.session.Credential(), req.ProblemID)
	if err != nil {
		h.logger.Error("Failed to load problem", "problemId", req.ProblemID, "error", err)
		writeDomainError(w, err)
		return
	}

	if err := h.session.RefreshUser(r.Context()); err != nil {
		h.logger.Error("Failed to load user on workspace open", "error", err)
	}
	if err := h.history.Refresh(r.Context(), problem.ProblemID); err != nil {
		h.logger.Error("Failed to load history on workspace open", "problemId", problem.ProblemID, "error", err)
	}

	fileSet := workspace2.NewFileSet()
	bench := workbench.NewWorkbench(problem, fileSet, h.session, h.gateway, h.history, h.logger)

	h.mu.Lock()
	h.fileSet = fileSet
	h.bench = bench
	h.mu.Unlock()

	h.logger.Info("Workspace opened", "problemId", problem.ProblemID)
	response.WriteSuccess(w, WorkspaceResponse{
		Problem:  problem,
		Files:    fileSet.Snapshot(),
		ActiveID: fileSet.ActiveID().String(),
	})
}

// ListFiles returns the current files and active selection
func (h *WorkspaceHandler) ListFiles(w http.ResponseWriter, r *http.Request) {
	bench, ok := h.currentBench(w)
	if !ok {
		return
	}
	fs := bench.FileSet()
	response.WriteSuccess(w, WorkspaceResponse{
		Problem:  bench.Problem(),
		Files:    fs.Snapshot(),
		ActiveID: fs.ActiveID().String(),
	})
}

// AddFile appends a new file, which becomes active
func (h *WorkspaceHandler) AddFile(w http.ResponseWriter, r *http.Request) {
	bench, ok := h.currentBench(w)
	if !ok {
		return
	}
	file := bench.FileSet().AddFile()
	response.WriteSuccess(w, file)
}

// UpdateFile replaces a file's content
func (h *WorkspaceHandler) UpdateFile(w http.ResponseWriter, r *http.Request) {
	bench, ok := h.currentBench(w)
	if !ok {
		return
	}
	fileID, ok := parseFileID(w, r)
	if !ok {
		return
	}

	var req UpdateFileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	bench.FileSet().UpdateContent(fileID, req.Content)
	w.WriteHeader(http.StatusNoContent)
}

// RenameFile renames a file
func (h *WorkspaceHandler) RenameFile(w http.ResponseWriter, r *http.Request) {
	bench, ok := h.currentBench(w)
	if !ok {
		return
	}
	fileID, ok := parseFileID(w, r)
	if !ok {
		return
	}

	var req RenameFileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	if err := bench.FileSet().Rename(fileID, req.Name); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ActivateFile changes the active selection
func (h *WorkspaceHandler) ActivateFile(w http.ResponseWriter, r *http.Request) {
	bench, ok := h.currentBench(w)
	if !ok {
		return
	}
	fileID, ok := parseFileID(w, r)
	if !ok {
		return
	}
	bench.FileSet().SetActive(fileID)
	w.WriteHeader(http.StatusNoContent)
}

// RemoveFile deletes a file
func (h *WorkspaceHandler) RemoveFile(w http.ResponseWriter, r *http.Request) {
	bench, ok := h.currentBench(w)
	if !ok {
		return
	}
	fileID, ok := parseFileID(w, r)
	if !ok {
		return
	}

	if err := bench.FileSet().Remove(fileID); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Run triggers a run action. Failures other than a rejected concurrent call
// surface as console lines, not as HTTP errors.
func (h *WorkspaceHandler) Run(w http.ResponseWriter, r *http.Request) {
	h.action(w, r, func(bench workbench.IWorkbenchService) error {
		return bench.Run(r.Context())
	})
}

// Submit triggers a submit action
func (h *WorkspaceHandler) Submit(w http.ResponseWriter, r *http.Request) {
	h.action(w, r, func(bench workbench.IWorkbenchService) error {
		return bench.Submit(r.Context())
	})
}

func (h *WorkspaceHandler) action(w http.ResponseWriter, r *http.Request, run func(workbench.IWorkbenchService) error) {
	bench, ok := h.currentBench(w)
	if !ok {
		return
	}

	if err := run(bench); errors.Is(err, errs.ActionInFlight) {
		writeDomainError(w, err)
		return
	}
	response.WriteSuccess(w, ConsoleResponse{
		Lines: bench.Console(),
		State: bench.State(),
	})
}

// GetConsole returns the console lines and the action state
func (h *WorkspaceHandler) GetConsole(w http.ResponseWriter, r *http.Request) {
	bench, ok := h.currentBench(w)
	if !ok {
		return
	}
	response.WriteSuccess(w, ConsoleResponse{
		Lines: bench.Console(),
		State: bench.State(),
	})
}

// ListSubmissions returns the cached history for the open problem, most
// recent first
func (h *WorkspaceHandler) ListSubmissions(w http.ResponseWriter, r *http.Request) {
	bench, ok := h.currentBench(w)
	if !ok {
		return
	}
	response.WriteSuccess(w, h.history.Records(bench.Problem().ProblemID))
}

// RestoreSubmission replaces the workspace files with a past submission's
// content. Destructive; only reachable through an explicit UI action.
func (h *WorkspaceHandler) RestoreSubmission(w http.ResponseWriter, r *http.Request) {
	bench, ok := h.currentBench(w)
	if !ok {
		return
	}

	submissionID := mux.Vars(r)["submissionId"]
	for _, record := range h.history.Records(bench.Problem().ProblemID) {
		if record.SubmissionID == submissionID {
			file := h.history.Restore(record, bench.FileSet())
			response.WriteSuccess(w, file)
			return
		}
	}
	http.Error(w, "Submission not found", http.StatusNotFound)
}

func (h *WorkspaceHandler) currentBench(w http.ResponseWriter) (workbench.IWorkbenchService, bool) {
	h.mu.Lock()
	bench := h.bench
	h.mu.Unlock()

	if bench == nil {
		response.WriteError(w, response.ErrorMessage{
			Message:    errs.ContextMissing.Error(),
			StatusCode: http.StatusBadRequest,
		})
		return nil, false
	}
	return bench, true
}

func parseFileID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	fileID, err := uuid.Parse(mux.Vars(r)["fileId"])
	if err != nil {
		http.Error(w, "Invalid file ID", http.StatusBadRequest)
		return uuid.Nil, false
	}
	return fileID, true
}

// writeDomainError maps workspace sentinels onto HTTP statuses
func writeDomainError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.DuplicateName), errors.Is(err, errs.ActionInFlight):
		status = http.StatusConflict
	case errors.Is(err, errs.EmptyFileName), errors.Is(err, errs.LastFileProtected), errors.Is(err, errs.ContextMissing):
		status = http.StatusBadRequest
	case errors.Is(err, errs.AuthMissing):
		status = http.StatusUnauthorized
	case errors.Is(err, errs.TransportFailure), errors.Is(err, errs.ApplicationFailure):
		status = http.StatusBadGateway
	}
	response.WriteError(w, response.ErrorMessage{
		Message:    err.Error(),
		StatusCode: status,
	})
}
