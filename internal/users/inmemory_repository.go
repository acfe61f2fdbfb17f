package users

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/dmitrijs2005/userdir/internal/common"
)

// InMemoryRepository is the reference directory backend: a mutex-guarded
// login→user map. Check-then-insert runs under the lock, so uniqueness
// holds under concurrent registration.
type InMemoryRepository struct {
	mu    sync.Mutex
	users map[string]*User
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{users: make(map[string]*User)}
}

func (r *InMemoryRepository) Create(ctx context.Context, user *User) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.Login]; ok {
		return nil, fmt.Errorf("%w: %s", common.ErrorLoginAlreadyExists, user.Login)
	}
	r.users[user.Login] = user
	return user, nil
}

func (r *InMemoryRepository) GetByLogin(ctx context.Context, login string) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[login]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return u, nil
}

func (r *InMemoryRepository) Update(ctx context.Context, user *User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.Login]; !ok {
		return common.ErrorNotFound
	}
	r.users[user.Login] = user
	return nil
}

func (r *InMemoryRepository) List(ctx context.Context) ([]*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Login < out[j].Login })
	return out, nil
}

func (r *InMemoryRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users = make(map[string]*User)
	return nil
}
