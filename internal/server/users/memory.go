package users

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/udesk/userdesk/internal/common"
)

// MemoryRepository is the in-process store used when no database DSN is
// configured, and by handler tests. Safe for concurrent use.
type MemoryRepository struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]User
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		nextID: 1,
		items:  make(map[int64]User),
	}
}

func (r *MemoryRepository) List(ctx context.Context) ([]User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]User, 0, len(r.items))
	for _, u := range r.items {
		result = append(result, u)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })

	return result, nil
}

func (r *MemoryRepository) Get(ctx context.Context, id int64) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.items[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &u, nil
}

func (r *MemoryRepository) Create(ctx context.Context, user *User) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.emailTakenLocked(user.Email, 0) {
		return nil, common.ErrorEmailTaken
	}

	user.ID = r.nextID
	r.nextID++
	r.items[user.ID] = *user

	return user, nil
}

func (r *MemoryRepository) Update(ctx context.Context, user *User) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[user.ID]; !ok {
		return nil, common.ErrorNotFound
	}
	if r.emailTakenLocked(user.Email, user.ID) {
		return nil, common.ErrorEmailTaken
	}

	r.items[user.ID] = *user
	return user, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return common.ErrorNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *MemoryRepository) ExistsByEmail(ctx context.Context, email string, excludeID int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.emailTakenLocked(email, excludeID), nil
}

func (r *MemoryRepository) emailTakenLocked(email string, excludeID int64) bool {
	for id, u := range r.items {
		if id != excludeID && strings.EqualFold(u.Email, email) {
			return true
		}
	}
	return false
}
