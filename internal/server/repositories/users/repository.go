// Package users declares the user repository contract and its in-memory
// implementation.
package users

import (
	"context"

	"github.com/dmitrijs2005/gatewayauth/internal/server/models"
)

type Repository interface {
	// Create inserts user unless its UserName is taken, in which case
	// common.ErrorAlreadyExists is returned. Check and insert are atomic.
	Create(ctx context.Context, user *models.User) error

	// GetUserByLogin returns the user or common.ErrorNotFound.
	GetUserByLogin(ctx context.Context, userName string) (*models.User, error)

	// Count returns the number of stored users.
	Count() int
}
