package history

import (
	"context"

	"gitlab.com/fcv-2025.net/client/internal/domain"
	"gitlab.com/fcv-2025.net/client/internal/workspace"
)

// IHistoryService caches past submissions per problem. Refresh is an explicit
// call made on workspace open and after a successful submit; there is no
// ambient re-fetch.
type IHistoryService interface {
	// Refresh replaces the cached records for a problem with the judge's
	// current view
	Refresh(ctx context.Context, problemID string) error

	// Records returns the cached records for a problem, most recent first.
	// Records with equal timestamps keep their original relative order.
	Records(problemID string) []*domain.SubmissionRecord

	// Restore replaces the entire FileSet with a single file seeded from the
	// record's content, discarding all open files and unsaved edits
	Restore(record *domain.SubmissionRecord, fileSet *workspace.FileSet) domain.SourceFile
}
