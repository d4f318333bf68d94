package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/honeycarbs/jobboard/internal/domain"
	"github.com/honeycarbs/jobboard/internal/domain/session"
)

// UserRepository is the known-users list with an email index
type UserRepository struct {
	mu      sync.RWMutex
	users   []domain.User
	byEmail map[string]int
}

func NewUserRepository(seed ...domain.User) *UserRepository {
	r := &UserRepository{byEmail: make(map[string]int, len(seed))}
	for _, u := range seed {
		r.byEmail[emailKey(u.Email)] = len(r.users)
		r.users = append(r.users, u.Clone())
	}
	return r
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.byEmail[emailKey(email)]
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	return r.users[i].Clone(), nil
}

func (r *UserRepository) GetByID(_ context.Context, id string) (domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.ID == id {
			return u.Clone(), nil
		}
	}
	return domain.User{}, domain.ErrNotFound
}

func (r *UserRepository) Create(_ context.Context, u domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := emailKey(u.Email)
	if _, taken := r.byEmail[key]; taken {
		return domain.ErrEmailTaken
	}
	r.byEmail[key] = len(r.users)
	r.users = append(r.users, u.Clone())
	return nil
}

func emailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

var _ session.UserRepository = (*UserRepository)(nil)
