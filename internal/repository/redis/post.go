package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/fritter/domain"
	"github.com/Guyuepp/fritter/internal/repository/cache"
)

type postCache struct {
	client *redis.Client
	keys   Keys
	ttl    time.Duration
	now    func() time.Time
}

var _ domain.PostCache = (*postCache)(nil)

// NewPostCache caches posts for ttl (logical); redis drops them after cache.PhysicalTTL(ttl)
func NewPostCache(client *redis.Client, keys Keys, ttl time.Duration) *postCache {
	return &postCache{
		client: client,
		keys:   keys,
		ttl:    ttl,
		now:    time.Now,
	}
}

// bare drops the populated relations; only the post row is cached.
func bare(p domain.Post) domain.Post {
	p.Author = nil
	p.Likes = nil
	return p
}

func (c *postCache) encode(p domain.Post) (string, error) {
	data, err := json.Marshal(cache.NewEntry(bare(p), c.now(), c.ttl))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (c *postCache) GetPost(ctx context.Context, id string) (domain.Post, bool, error) {
	data, err := c.client.Get(ctx, c.keys.Post(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Post{}, false, domain.ErrCacheMiss
	} else if err != nil {
		return domain.Post{}, false, err
	}

	var entry cache.Entry[domain.Post]
	if err = json.Unmarshal(data, &entry); err != nil {
		return domain.Post{}, false, err
	}
	return entry.Data, entry.IsLogicalExpired(c.now()), nil
}

// GetPosts returns the fresh cached subset of ids. Expired or unreadable
// entries are left out so the caller reloads them.
func (c *postCache) GetPosts(ctx context.Context, ids []string) (map[string]domain.Post, error) {
	if len(ids) == 0 {
		return map[string]domain.Post{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = c.keys.Post(id)
	}

	vals, err := c.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	now := c.now()
	res := make(map[string]domain.Post, len(ids))
	for i, val := range vals {
		str, ok := val.(string)
		if !ok {
			continue
		}
		var entry cache.Entry[domain.Post]
		if err := json.Unmarshal([]byte(str), &entry); err != nil {
			logrus.Warnf("dropping unreadable cache entry %s: %v", keys[i], err)
			continue
		}
		if entry.IsLogicalExpired(now) {
			continue
		}
		res[ids[i]] = entry.Data
	}
	return res, nil
}

func (c *postCache) SetPost(ctx context.Context, p domain.Post) error {
	data, err := c.encode(p)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.keys.Post(p.ID), data, cache.PhysicalTTL(c.ttl)).Err()
}

func (c *postCache) BatchSetPost(ctx context.Context, ps []domain.Post) error {
	if len(ps) == 0 {
		return nil
	}

	var errMarshal error
	pipe := c.client.Pipeline()
	for i := range ps {
		data, err := c.encode(ps[i])
		if err != nil {
			logrus.Warnf("failed to marshal post for cache, ID: %s, err: %v", ps[i].ID, err)
			errMarshal = err
			continue
		}
		pipe.Set(ctx, c.keys.Post(ps[i].ID), data, cache.PhysicalTTL(c.ttl))
	}
	if pipe.Len() == 0 {
		return errMarshal
	}
	_, err := pipe.Exec(ctx)
	return err
}

func (c *postCache) DeletePost(ctx context.Context, ids ...string) error {
	if len(ids) == 0 {
		return nil
	}
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = c.keys.Post(id)
	}
	return c.client.Del(ctx, keys...).Err()
}
