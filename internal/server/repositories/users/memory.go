package users

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/gatewayauth/internal/common"
	"github.com/dmitrijs2005/gatewayauth/internal/server/models"
)

// MemoryRepository keeps users in a map guarded by a RWMutex. Stored values
// are copies, so callers cannot mutate a record after Create.
type MemoryRepository struct {
	mu    sync.RWMutex
	users map[string]models.User
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{users: make(map[string]models.User)}
}

func (r *MemoryRepository) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.UserName]; exists {
		return common.ErrorAlreadyExists
	}
	r.users[user.UserName] = *user
	return nil
}

func (r *MemoryRepository) GetUserByLogin(ctx context.Context, userName string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[userName]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &u, nil
}

func (r *MemoryRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}
