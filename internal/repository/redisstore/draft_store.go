// Package redisstore keeps advisory state in redis: in-progress application
// drafts that a browser saves between intake steps. Drafts are never
// authoritative; the submit path ignores them entirely.
package redisstore

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Sumukwo12/recruitment-portal-sub000/internal/common"
)

const draftKeyPrefix = "intake:draft:"

type DraftStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewDraftStore returns nil when no redis client is configured; callers treat
// a nil store as the feature being disabled.
func NewDraftStore(client *redis.Client, ttl time.Duration) *DraftStore {
	if client == nil {
		return nil
	}
	return &DraftStore{client: client, ttl: ttl}
}

func (s *DraftStore) Enabled() bool {
	return s != nil && s.client != nil
}

func (s *DraftStore) Save(ctx context.Context, id string, payload []byte) error {
	if !s.Enabled() {
		return common.NewError(common.CodeNotFound, "drafts are not enabled", nil)
	}
	if err := s.client.Set(ctx, draftKeyPrefix+id, payload, s.ttl).Err(); err != nil {
		return common.NewError(common.CodeInternal, "failed to save draft", err)
	}
	return nil
}

func (s *DraftStore) Get(ctx context.Context, id string) ([]byte, error) {
	if !s.Enabled() {
		return nil, common.NewError(common.CodeNotFound, "drafts are not enabled", nil)
	}
	payload, err := s.client.Get(ctx, draftKeyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, common.NewError(common.CodeNotFound, "draft not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load draft", err)
	}
	return payload, nil
}

func (s *DraftStore) Delete(ctx context.Context, id string) error {
	if !s.Enabled() {
		return nil
	}
	if err := s.client.Del(ctx, draftKeyPrefix+id).Err(); err != nil {
		return common.NewError(common.CodeInternal, "failed to delete draft", err)
	}
	return nil
}
