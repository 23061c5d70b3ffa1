package workspace

import (
	"gitlab.com/fcv-2025.net/client/internal/domain"
)

// LoginRequest carries the bearer token obtained from the judge's login form
type LoginRequest struct {
	Token string `json:"token"`
}

// OpenWorkspaceRequest opens a workspace for one problem
type OpenWorkspaceRequest struct {
	ProblemID string `json:"problemId"`
}

// UpdateFileRequest replaces a file's content
type UpdateFileRequest struct {
	Content string `json:"content"`
}

// RenameFileRequest renames a file
type RenameFileRequest struct {
	Name string `json:"name"`
}

// SessionResponse describes the current session
type SessionResponse struct {
	Identity *domain.AuthClaims `json:"identity"`
	User     *domain.User       `json:"user"`
}

// WorkspaceResponse describes the open workspace
type WorkspaceResponse struct {
	Problem  *domain.Problem     `json:"problem"`
	Files    []domain.SourceFile `json:"files"`
	ActiveID string              `json:"activeId"`
}

// ConsoleResponse carries the console lines and the action state
type ConsoleResponse struct {
	Lines []string           `json:"lines"`
	State domain.ActionState `json:"state"`
}
