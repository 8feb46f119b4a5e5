// Package repomanager provides a concrete RepositoryManager backed by
// process memory, wiring together the user store and both token stores.
package repomanager

import (
	"github.com/dmitrijs2005/gatewayauth/internal/server/repositories/tokens"
	"github.com/dmitrijs2005/gatewayauth/internal/server/repositories/users"
)

// InMemoryRepositoryManager owns one user store and two token stores for the
// lifetime of the process.
type InMemoryRepositoryManager struct {
	users   *users.MemoryRepository
	access  *tokens.MemoryRepository
	refresh *tokens.MemoryRepository
}

// NewInMemoryRepositoryManager builds empty stores whose tokens are
// tokenSize random bytes, hex encoded.
func NewInMemoryRepositoryManager(tokenSize int) *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{
		users:   users.NewMemoryRepository(),
		access:  tokens.NewMemoryRepository(tokens.HexGenerator(tokenSize)),
		refresh: tokens.NewMemoryRepository(tokens.HexGenerator(tokenSize)),
	}
}

func (m *InMemoryRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *InMemoryRepositoryManager) AccessTokens() tokens.Repository {
	return m.access
}

func (m *InMemoryRepositoryManager) RefreshTokens() tokens.Repository {
	return m.refresh
}
