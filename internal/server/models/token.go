package models

// TokenPair bundles an access token and the refresh token it was issued with.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}
