// Package auth extracts bearer credentials from transport headers.
package auth

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gatewayauth/internal/common"
)

// ParseBearer returns the token carried by a "Bearer <token>" credential.
// The prefix is matched literally; any other shape is rejected.
func ParseBearer(credential string) (string, error) {
	if credential == "" {
		return "", fmt.Errorf("missing token: %w", common.ErrorUnauthorized)
	}

	token, ok := strings.CutPrefix(credential, common.BearerPrefix)
	if !ok || token == "" {
		return "", fmt.Errorf("%w: %w", common.ErrInvalidToken, common.ErrorUnauthorized)
	}
	return token, nil
}
