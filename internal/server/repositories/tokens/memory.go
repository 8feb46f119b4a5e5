package tokens

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/gatewayauth/internal/common"
)

// maxIssueAttempts bounds regeneration on collision. With 128+ bits of
// entropy a single retry is already astronomically unlikely.
const maxIssueAttempts = 8

// MemoryRepository is a token → user name map guarded by its own RWMutex.
type MemoryRepository struct {
	mu       sync.RWMutex
	tokens   map[string]string
	generate Generator
}

func NewMemoryRepository(generate Generator) *MemoryRepository {
	return &MemoryRepository{
		tokens:   make(map[string]string),
		generate: generate,
	}
}

func (r *MemoryRepository) Issue(ctx context.Context, userName string) (string, error) {
	for attempt := 0; attempt < maxIssueAttempts; attempt++ {
		token, err := r.generate()
		if err != nil {
			return "", fmt.Errorf("error generating token: %w", err)
		}

		if r.insertIfAbsent(token, userName) {
			return token, nil
		}
	}
	return "", fmt.Errorf("no unique token after %d attempts: %w", maxIssueAttempts, common.ErrorInternal)
}

func (r *MemoryRepository) insertIfAbsent(token, userName string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tokens[token]; exists {
		return false
	}
	r.tokens[token] = userName
	return true
}

func (r *MemoryRepository) Resolve(ctx context.Context, token string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	userName, ok := r.tokens[token]
	if !ok {
		return "", common.ErrorNotFound
	}
	return userName, nil
}

func (r *MemoryRepository) Revoke(ctx context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.tokens, token)
	return nil
}

func (r *MemoryRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tokens)
}
