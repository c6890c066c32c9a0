package credentials

import (
	"context"
)

// Keys written by the auth actions.
const (
	KeyToken = "token"
	KeyUser  = "user"
)

// Repository is the durable key-value store holding the session credential.
//
// Get returns (nil, nil) for an absent key. Delete of an absent key is not an
// error. Writes to different keys are independent: there is no transaction
// spanning them, so callers order dependent writes themselves.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
