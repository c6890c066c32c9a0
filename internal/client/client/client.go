package client

import (
	"context"

	"github.com/dmitrijs2005/gophfeed/internal/client/models"
)

// Client is the remote API as seen by the auth and feed services.
type Client interface {
	Login(ctx context.Context, creds models.Credentials) (*models.AuthResult, error)
	Signup(ctx context.Context, form models.SignupForm) (*models.AuthResult, error)
	Posts(ctx context.Context, token string) ([]models.Post, error)
	Close() error
}
