package client

import "context"

// Profile is the identity returned by Me.
type Profile struct {
	UserName string
	Email    string
	Role     string
}

type Client interface {
	Close() error
	Register(ctx context.Context, userName, password, email string) error
	Login(ctx context.Context, userName, password string) error
	Refresh(ctx context.Context) error
	Logout(ctx context.Context) error
	Me(ctx context.Context) (*Profile, error)
	Ping(ctx context.Context) error
	LoggedIn() bool
}
