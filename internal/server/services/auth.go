// Package services contains server-side business logic. This file implements
// AuthService, which handles registration, login, access-token refresh,
// logout and identification on top of the in-memory stores.
package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gatewayauth/internal/common"
	"github.com/dmitrijs2005/gatewayauth/internal/server/auth"
	"github.com/dmitrijs2005/gatewayauth/internal/server/config"
	"github.com/dmitrijs2005/gatewayauth/internal/server/models"
	"github.com/dmitrijs2005/gatewayauth/internal/server/repositories/repomanager"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// RegisterInput carries the registration fields checked before a user is
// created. Email is optional.
type RegisterInput struct {
	UserName string `validate:"required"`
	Password string `validate:"required"`
	Email    string
}

// AuthService provides authentication-related operations:
//   - Register: create users
//   - Login: verify credentials and issue an access/refresh token pair
//   - Refresh: issue a new access token for a live refresh token
//   - Logout: revoke a refresh token on behalf of an authenticated caller
//   - Identify: resolve a bearer credential to a user profile
type AuthService struct {
	repomanager        repomanager.RepositoryManager
	defaultEmailDomain string
}

// NewAuthService constructs an AuthService using repositories and server config.
func NewAuthService(m repomanager.RepositoryManager, cfg *config.Config) *AuthService {
	return &AuthService{
		repomanager:        m,
		defaultEmailDomain: cfg.DefaultEmailDomain,
	}
}

// Register creates a viewer account. An omitted or empty email defaults to
// <username>@<default domain>. No tokens are issued.
func (s *AuthService) Register(ctx context.Context, userName, password, email string) error {
	in := RegisterInput{UserName: userName, Password: password, Email: email}
	if err := validateInput(in); err != nil {
		return err
	}

	if in.Email == "" {
		in.Email = in.UserName + "@" + s.defaultEmailDomain
	}

	user := &models.User{
		UserName: in.UserName,
		Email:    in.Email,
		Password: in.Password,
		Role:     models.RoleViewer,
	}

	err := s.repomanager.Users().Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return fmt.Errorf("user %q: %w", userName, common.ErrorConflict)
		}
		return fmt.Errorf("error creating user: %w", err)
	}
	return nil
}

// Login verifies the password and, on success, returns a new TokenPair.
// Unknown users and wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, userName, password string) (*models.TokenPair, error) {
	user, err := s.repomanager.Users().GetUserByLogin(ctx, userName)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, fmt.Errorf("error searching user: %w", err)
	}

	if !checkPassword(user.Password, password) {
		return nil, common.ErrorUnauthorized
	}

	access, err := s.repomanager.AccessTokens().Issue(ctx, user.UserName)
	if err != nil {
		return nil, fmt.Errorf("error issuing access token: %w", err)
	}
	refresh, err := s.repomanager.RefreshTokens().Issue(ctx, user.UserName)
	if err != nil {
		return nil, fmt.Errorf("error issuing refresh token: %w", err)
	}

	return &models.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// Refresh issues a new access token for the owner of refreshToken. The
// refresh token itself is returned unchanged and stays valid.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*models.TokenPair, error) {
	userName, err := s.repomanager.RefreshTokens().Resolve(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, fmt.Errorf("error searching refresh token: %w", err)
	}

	access, err := s.repomanager.AccessTokens().Issue(ctx, userName)
	if err != nil {
		return nil, fmt.Errorf("error issuing access token: %w", err)
	}

	return &models.TokenPair{AccessToken: access, RefreshToken: refreshToken}, nil
}

// Logout revokes refreshToken after checking that credential identifies a
// known user. The refresh token is not required to belong to that user, and
// the access token stays live. Revoking an unknown refresh token succeeds.
func (s *AuthService) Logout(ctx context.Context, refreshToken, credential string) error {
	if _, err := s.Identify(ctx, credential); err != nil {
		return err
	}

	if err := s.repomanager.RefreshTokens().Revoke(ctx, refreshToken); err != nil {
		return fmt.Errorf("error revoking refresh token: %w", err)
	}
	return nil
}

// Identify resolves a "Bearer <access token>" credential to the profile of
// the user it was issued for.
func (s *AuthService) Identify(ctx context.Context, credential string) (*models.Profile, error) {
	token, err := auth.ParseBearer(credential)
	if err != nil {
		return nil, err
	}

	userName, err := s.repomanager.AccessTokens().Resolve(ctx, token)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, fmt.Errorf("error searching access token: %w", err)
	}

	user, err := s.repomanager.Users().GetUserByLogin(ctx, userName)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, fmt.Errorf("error searching user: %w", err)
	}

	return user.Profile(), nil
}

// --- helpers below ---

func checkPassword(stored, candidate string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(candidate)) == 1
}

func validateInput(in RegisterInput) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("error validating input: %w", err)
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, strings.ToLower(fe.Field()))
	}
	return fmt.Errorf("%w: %s required", common.ErrorInvalidInput, strings.Join(fields, ", "))
}
