// Package tokens declares the token repository contract and its in-memory
// implementation. One repository holds one kind of token (access or
// refresh); repomanager owns one instance of each.
package tokens

import (
	"context"

	"github.com/dmitrijs2005/gatewayauth/internal/common"
)

// Repository maps opaque tokens to the user name they were issued for.
type Repository interface {
	// Issue generates a fresh token unique within the repository, binds it
	// to userName and returns it.
	Issue(ctx context.Context, userName string) (string, error)

	// Resolve returns the user name bound to token or common.ErrorNotFound.
	Resolve(ctx context.Context, token string) (string, error)

	// Revoke removes token. Revoking an unknown token is not an error.
	Revoke(ctx context.Context, token string) error

	// Count returns the number of live tokens.
	Count() int
}

// Generator produces a new random token string.
type Generator func() (string, error)

// HexGenerator returns a Generator of size random bytes, hex encoded.
func HexGenerator(size int) Generator {
	return func() (string, error) {
		return common.MakeRandHexString(size)
	}
}
