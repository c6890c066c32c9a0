package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophfeed/internal/client/client"
	"github.com/dmitrijs2005/gophfeed/internal/client/models"
	"github.com/dmitrijs2005/gophfeed/internal/client/repositories/credentials"
	"github.com/dmitrijs2005/gophfeed/internal/client/session"
	"github.com/dmitrijs2005/gophfeed/internal/common"
	"github.com/dmitrijs2005/gophfeed/internal/logging"
	"github.com/patrickmn/go-cache"
)

// SessionInvalidator is the part of AuthService the feed needs when the API
// rejects the token.
type SessionInvalidator interface {
	InvalidateSession(ctx context.Context) error
}

// FeedService serves the authenticated screens.
type FeedService interface {
	// Posts returns the feed for the current token. Results are cached per
	// token; refresh bypasses the cache.
	Posts(ctx context.Context, refresh bool) ([]models.Post, error)
	// Profile decodes the stored user record. After a signup there is no
	// record and an empty profile is returned.
	Profile(ctx context.Context) (*models.UserProfile, error)
	Close()
}

// feedService is the concrete FeedService.
type feedService struct {
	client      client.Client
	store       credentials.Repository
	manager     *session.Manager
	invalidator SessionInvalidator
	logger      logging.Logger
	posts       *cache.Cache
	unsubscribe func()
}

// NewFeedService constructs a FeedService. Cached posts are dropped on every
// session transition reported by m.
func NewFeedService(c client.Client, store credentials.Repository, m *session.Manager,
	inv SessionInvalidator, ttl time.Duration, l logging.Logger) FeedService {

	f := &feedService{
		client:      c,
		store:       store,
		manager:     m,
		invalidator: inv,
		logger:      l.With("module", "feed_service"),
		posts:       cache.New(ttl, 2*ttl),
	}
	// nothing fetched under one session may be shown in the next
	f.unsubscribe = m.Subscribe(func(_, _ session.Status) { f.posts.Flush() })
	return f
}

func (f *feedService) Posts(ctx context.Context, refresh bool) ([]models.Post, error) {
	token := f.manager.Current().Token
	if token == "" {
		return nil, common.ErrUnauthorized
	}

	if !refresh {
		if v, ok := f.posts.Get(token); ok {
			return v.([]models.Post), nil
		}
	}

	posts, err := f.client.Posts(ctx, token)
	if err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			f.logger.Warn(ctx, "token rejected by API, invalidating session")
			if ierr := f.invalidator.InvalidateSession(ctx); ierr != nil {
				f.logger.Error(ctx, "session invalidation failed", "error", ierr)
			}
		}
		return nil, fmt.Errorf("posts: %w", err)
	}

	f.posts.Set(token, posts, cache.DefaultExpiration)
	return posts, nil
}

func (f *feedService) Profile(ctx context.Context) (*models.UserProfile, error) {
	if f.manager.Status() != session.StatusAuthenticated {
		return nil, common.ErrUnauthorized
	}

	raw, err := f.store.Get(ctx, credentials.KeyUser)
	if err != nil {
		return nil, &common.StorageError{Op: "get", Key: credentials.KeyUser, Err: err}
	}

	p, err := models.DecodeUserProfile(raw)
	if err != nil {
		return nil, fmt.Errorf("decode stored user: %w", err)
	}
	return p, nil
}

func (f *feedService) Close() {
	f.unsubscribe()
}
