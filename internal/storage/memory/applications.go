package memory

import (
	"context"
	"sync"

	"github.com/honeycarbs/jobboard/internal/domain"
	"github.com/honeycarbs/jobboard/internal/domain/application"
)

// ApplicationRepository keeps applications in submission order with an id index
type ApplicationRepository struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]domain.Application
}

func NewApplicationRepository(seed ...domain.Application) *ApplicationRepository {
	r := &ApplicationRepository{byID: make(map[string]domain.Application, len(seed))}
	for _, a := range seed {
		r.add(a)
	}
	return r
}

func (r *ApplicationRepository) Create(_ context.Context, app domain.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.add(app)
	return nil
}

func (r *ApplicationRepository) GetByID(_ context.Context, id string) (domain.Application, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.byID[id]
	if !ok {
		return domain.Application{}, domain.ErrNotFound
	}
	return a, nil
}

func (r *ApplicationRepository) ListByCandidate(_ context.Context, candidateID string) ([]domain.Application, error) {
	return r.filter(func(a domain.Application) bool { return a.CandidateID == candidateID }), nil
}

func (r *ApplicationRepository) ListByJob(_ context.Context, jobID string) ([]domain.Application, error) {
	return r.filter(func(a domain.Application) bool { return a.JobID == jobID }), nil
}

func (r *ApplicationRepository) FindByJobAndCandidate(_ context.Context, jobID, candidateID string) (domain.Application, error) {
	matches := r.filter(func(a domain.Application) bool {
		return a.JobID == jobID && a.CandidateID == candidateID
	})
	if len(matches) == 0 {
		return domain.Application{}, domain.ErrNotFound
	}
	return matches[0], nil
}

func (r *ApplicationRepository) Update(_ context.Context, app domain.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[app.ID]; !ok {
		return domain.ErrNotFound
	}
	r.byID[app.ID] = app
	return nil
}

// add expects r.mu held for writing, or exclusive access during construction
func (r *ApplicationRepository) add(app domain.Application) {
	if _, exists := r.byID[app.ID]; !exists {
		r.order = append(r.order, app.ID)
	}
	r.byID[app.ID] = app
}

func (r *ApplicationRepository) filter(keep func(domain.Application) bool) []domain.Application {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Application, 0)
	for _, id := range r.order {
		if a := r.byID[id]; keep(a) {
			out = append(out, a)
		}
	}
	return out
}

var _ application.Repository = (*ApplicationRepository)(nil)
