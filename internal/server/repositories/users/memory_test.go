package users

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/dmitrijs2005/gatewayauth/internal/common"
	"github.com/dmitrijs2005/gatewayauth/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()

	u := &models.User{UserName: "alice", Email: "alice@example.local", Password: "pw1", Role: models.RoleViewer}
	require.NoError(t, r.Create(ctx, u))

	got, err := r.GetUserByLogin(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, *u, *got)
	assert.Equal(t, 1, r.Count())
}

func TestMemoryRepository_DuplicateIsRejected(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()

	require.NoError(t, r.Create(ctx, &models.User{UserName: "alice", Password: "pw1"}))
	err := r.Create(ctx, &models.User{UserName: "alice", Password: "pw2"})
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)

	got, err := r.GetUserByLogin(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "pw1", got.Password, "first registration must survive")
}

func TestMemoryRepository_NotFound(t *testing.T) {
	_, err := NewMemoryRepository().GetUserByLogin(context.Background(), "ghost")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestMemoryRepository_RecordsAreCopies(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()

	u := &models.User{UserName: "bob", Role: models.RoleViewer}
	require.NoError(t, r.Create(ctx, u))
	u.Role = "admin"

	got, err := r.GetUserByLogin(ctx, "bob")
	require.NoError(t, err)
	got.Email = "changed"

	again, err := r.GetUserByLogin(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, models.RoleViewer, again.Role)
	assert.Empty(t, again.Email)
}

func TestMemoryRepository_ConcurrentSameName(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()

	const n = 64
	var ok, conflicts atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := r.Create(ctx, &models.User{UserName: "carol", Password: fmt.Sprint(i)})
			switch {
			case err == nil:
				ok.Add(1)
			case err == common.ErrorAlreadyExists:
				conflicts.Add(1)
			}
		}(i)
	}
	wg.Wait()

	assert.EqualValues(t, 1, ok.Load())
	assert.EqualValues(t, n-1, conflicts.Load())
	assert.Equal(t, 1, r.Count())
}
