package repomanager

import (
	"github.com/dmitrijs2005/gatewayauth/internal/server/repositories/tokens"
	"github.com/dmitrijs2005/gatewayauth/internal/server/repositories/users"
)

// RepositoryManager vends the stores backing the auth service. The access
// and refresh stores are distinct: a token valid in one is unknown to the
// other.
type RepositoryManager interface {
	Users() users.Repository
	AccessTokens() tokens.Repository
	RefreshTokens() tokens.Repository
}
