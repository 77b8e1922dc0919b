package appscript

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"line-task-tracker/internal/model"
	"line-task-tracker/internal/task/repository"
	pkgLog "line-task-tracker/pkg/log"
)

const allUsersKey = "all"

type implUserRepository struct {
	client *Client
	l      pkgLog.Logger
	// cache holds the last list_users answer; writes invalidate it.
	cache *expirable.LRU[string, []model.User]
}

// NewUserRepository creates a user repository over the Data API. The user
// listing is cached for cacheTTL; zero disables caching.
func NewUserRepository(client *Client, l pkgLog.Logger, cacheTTL time.Duration) repository.UserRepository {
	r := &implUserRepository{
		client: client,
		l:      l,
	}
	if cacheTTL > 0 {
		r.cache = expirable.NewLRU[string, []model.User](1, nil, cacheTTL)
	}
	return r
}

func (r *implUserRepository) GetUser(ctx context.Context, id string) (model.User, error) {
	resp, err := r.client.Call(ctx, ActionGetUser, map[string]any{"user_id": id})
	if err != nil {
		r.l.Errorf(ctx, "appscript repository: failed to get user %s: %v", id, err)
		return model.User{}, err
	}
	if !resp.Found || resp.User == nil {
		return model.User{}, fmt.Errorf("user %s: %w", id, repository.ErrNotFound)
	}
	u := toUser(*resp.User)
	if u.ID == "" {
		u.ID = id
	}
	return u, nil
}

func (r *implUserRepository) UpsertUser(ctx context.Context, user model.User) error {
	if _, err := r.client.Call(ctx, ActionUpsertUser, fromUser(user)); err != nil {
		r.l.Errorf(ctx, "appscript repository: failed to upsert user %s: %v", user.ID, err)
		return err
	}
	if r.cache != nil {
		r.cache.Remove(allUsersKey)
	}
	return nil
}

func (r *implUserRepository) ListUsers(ctx context.Context) ([]model.User, error) {
	if r.cache != nil {
		if users, ok := r.cache.Get(allUsersKey); ok {
			return slices.Clone(users), nil
		}
	}

	resp, err := r.client.Call(ctx, ActionListUsers, map[string]any{})
	if err != nil {
		r.l.Errorf(ctx, "appscript repository: failed to list users: %v", err)
		return nil, err
	}

	users := make([]model.User, 0, len(resp.Users))
	for _, rec := range resp.Users {
		users = append(users, toUser(rec))
	}
	if r.cache != nil {
		r.cache.Add(allUsersKey, slices.Clone(users))
	}
	return users, nil
}
