package workbench

import (
	"gitlab.com/fcv-2025.net/client/internal/domain"
	"gitlab.com/fcv-2025.net/client/internal/static/errs"
)

// BuildSubmissionPayload merges a FileSet snapshot, the authenticated user and
// the loaded problem into a wire-ready payload. Pure: no I/O, no mutation.
// NamesOfFiles preserves the snapshot's order, which the judge may use as link
// order, and matches the sourceCode keys exactly.
func BuildSubmissionPayload(files []domain.SourceFile, user *domain.User, problemID string) (*domain.SubmissionPayload, error) {
	if user == nil || user.ID == "" {
		return nil, errs.AuthMissing
	}
	if problemID == "" {
		return nil, errs.ContextMissing
	}

	sourceCode := make(map[string]string, len(files))
	names := make([]string, 0, len(files))
	for _, f := range files {
		sourceCode[f.Name] = f.Content
		names = append(names, f.Name)
	}

	return &domain.SubmissionPayload{
		SourceCode:   sourceCode,
		NamesOfFiles: names,
		UserID:       user.ID,
		ProblemID:    problemID,
	}, nil
}
