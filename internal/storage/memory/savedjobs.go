package memory

import (
	"context"
	"sync"

	"github.com/honeycarbs/jobboard/internal/domain"
	"github.com/honeycarbs/jobboard/internal/domain/savedjob"
)

// SavedJobRepository keeps bookmarks in save order
type SavedJobRepository struct {
	mu    sync.RWMutex
	saved []domain.SavedJob
}

func NewSavedJobRepository(seed ...domain.SavedJob) *SavedJobRepository {
	return &SavedJobRepository{saved: append([]domain.SavedJob(nil), seed...)}
}

func (r *SavedJobRepository) Create(_ context.Context, s domain.SavedJob) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saved = append(r.saved, s)
	return nil
}

func (r *SavedJobRepository) Find(_ context.Context, jobID, candidateID string) (domain.SavedJob, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i := r.index(jobID, candidateID); i >= 0 {
		return r.saved[i], nil
	}
	return domain.SavedJob{}, domain.ErrNotFound
}

func (r *SavedJobRepository) ListByCandidate(_ context.Context, candidateID string) ([]domain.SavedJob, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.SavedJob, 0)
	for _, s := range r.saved {
		if s.CandidateID == candidateID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *SavedJobRepository) Delete(_ context.Context, jobID, candidateID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.index(jobID, candidateID)
	if i < 0 {
		return false, nil
	}
	r.saved = append(r.saved[:i], r.saved[i+1:]...)
	return true, nil
}

func (r *SavedJobRepository) index(jobID, candidateID string) int {
	for i, s := range r.saved {
		if s.JobID == jobID && s.CandidateID == candidateID {
			return i
		}
	}
	return -1
}

var _ savedjob.Repository = (*SavedJobRepository)(nil)
