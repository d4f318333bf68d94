package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/honeycarbs/jobboard/internal/domain"
	"github.com/honeycarbs/jobboard/internal/domain/job"
)

// JobRepository keeps postings newest first with an id index
type JobRepository struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]domain.Job
}

// NewJobRepository stores seed in the given order
func NewJobRepository(seed ...domain.Job) *JobRepository {
	r := &JobRepository{
		order: make([]string, 0, len(seed)),
		byID:  make(map[string]domain.Job, len(seed)),
	}
	for _, j := range seed {
		if _, dup := r.byID[j.ID]; dup {
			continue
		}
		r.order = append(r.order, j.ID)
		r.byID[j.ID] = j.Clone()
	}
	return r
}

func (r *JobRepository) List(_ context.Context) ([]domain.Job, error) {
	return r.collect(nil), nil
}

func (r *JobRepository) GetByID(_ context.Context, id string) (domain.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	j, ok := r.byID[id]
	if !ok {
		return domain.Job{}, domain.ErrNotFound
	}
	return j.Clone(), nil
}

func (r *JobRepository) ListByEmployer(_ context.Context, employerID string) ([]domain.Job, error) {
	return r.collect(func(j domain.Job) bool { return j.EmployerID == employerID }), nil
}

func (r *JobRepository) Create(_ context.Context, j domain.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byID[j.ID]; exists {
		r.order = slices.DeleteFunc(r.order, func(id string) bool { return id == j.ID })
	}
	r.order = slices.Insert(r.order, 0, j.ID)
	r.byID[j.ID] = j.Clone()
	return nil
}

func (r *JobRepository) Update(_ context.Context, j domain.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[j.ID]; !ok {
		return domain.ErrNotFound
	}
	r.byID[j.ID] = j.Clone()
	return nil
}

func (r *JobRepository) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return false, nil
	}
	delete(r.byID, id)
	if i := slices.Index(r.order, id); i >= 0 {
		r.order = slices.Delete(r.order, i, i+1)
	}
	return true, nil
}

func (r *JobRepository) collect(keep func(domain.Job) bool) []domain.Job {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Job, 0, len(r.order))
	for _, id := range r.order {
		j := r.byID[id]
		if keep == nil || keep(j) {
			out = append(out, j.Clone())
		}
	}
	return out
}

var _ job.Repository = (*JobRepository)(nil)
