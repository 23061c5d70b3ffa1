package history

import (
	"context"
	"sort"
	"sync"

	"gitlab.com/fcv-2025.net/client/internal/core/ports/primary"
	"gitlab.com/fcv-2025.net/client/internal/core/ports/secondary"
	"gitlab.com/fcv-2025.net/client/internal/core/services/session"
	"gitlab.com/fcv-2025.net/client/internal/domain"
	"gitlab.com/fcv-2025.net/client/internal/workspace"
)

var _ IHistoryService = (*HistoryService)(nil)

// HistoryService implements the IHistoryService interface
type HistoryService struct {
	mu      sync.Mutex
	records map[string][]*domain.SubmissionRecord

	gateway secondary.JudgeGateway
	session session.ISessionService
	logger  primary.Logger
}

// NewHistoryService creates a new history service
func NewHistoryService(
	gateway secondary.JudgeGateway,
	sessionSvc session.ISessionService,
	logger primary.Logger,
) *HistoryService {
	return &HistoryService{
		records: make(map[string][]*domain.SubmissionRecord),
		gateway: gateway,
		session: sessionSvc,
		logger:  logger,
	}
}

// Refresh replaces the cached records for a problem with the judge's current
// view. Arrival order is preserved as the tiebreaker for equal timestamps.
func (s *HistoryService) Refresh(ctx context.Context, problemID string) error {
	records, err := s.gateway.GetSubmissions(ctx, s.session.Credential(), problemID)
	if err != nil {
		s.logger.Error("Failed to refresh submission history", "problemId", problemID, "error", err)
		return err
	}

	s.mu.Lock()
	s.records[problemID] = records
	s.mu.Unlock()

	s.logger.Debug("Submission history refreshed", "problemId", problemID, "count", len(records))
	return nil
}

// Records returns the cached records for a problem, filtered to that problem
// and sorted by submission time descending. The sort is stable so equal
// timestamps never reorder between calls.
func (s *HistoryService) Records(problemID string) []*domain.SubmissionRecord {
	s.mu.Lock()
	cached := s.records[problemID]
	out := make([]*domain.SubmissionRecord, 0, len(cached))
	for _, r := range cached {
		if r.ProblemID == problemID {
			out = append(out, r)
		}
	}
	s.mu.Unlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SubmittedAt.After(out[j].SubmittedAt)
	})
	return out
}

// Restore replaces the FileSet with a single file holding the record's
// submitted code. Destructive; the caller gates it behind explicit user
// action.
func (s *HistoryService) Restore(record *domain.SubmissionRecord, fileSet *workspace.FileSet) domain.SourceFile {
	s.logger.Info("Restoring submission", "submissionId", record.SubmissionID)
	return fileSet.ReplaceAll(record.Content)
}
