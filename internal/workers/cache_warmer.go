package workers

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/fritter/domain"
)

const (
	warmQueueSize     = 1024
	warmBatchSize     = 100
	warmFlushInterval = time.Second
)

// cacheWarmer fills the post cache with posts that listings just returned, so
// a following single-post read is a hit. Ids are batched and every batch is
// re-read from the database before it is written.
type cacheWarmer struct {
	posts domain.PostRepository
	cache domain.PostCache
	ch    chan string
	done  chan struct{}
}

// NewCacheWarmer expects the database repository, not the cached coordinator.
func NewCacheWarmer(posts domain.PostRepository, cache domain.PostCache) *cacheWarmer {
	return &cacheWarmer{
		posts: posts,
		cache: cache,
		ch:    make(chan string, warmQueueSize),
		done:  make(chan struct{}),
	}
}

// Send queues ids without blocking. Ids that do not fit are dropped.
func (w *cacheWarmer) Send(ids ...string) {
	for _, id := range ids {
		select {
		case w.ch <- id:
		default:
			logrus.Debug("cache warmer queue is full, id dropped")
			return
		}
	}
}

// Start runs until ctx is done, then flushes what is left and returns
func (w *cacheWarmer) Start(ctx context.Context) {
	defer close(w.done)
	ticker := time.NewTicker(warmFlushInterval)
	defer ticker.Stop()

	batch := make([]string, 0, warmBatchSize)
	for {
		select {
		case id := <-w.ch:
			batch = append(batch, id)
			if len(batch) == warmBatchSize {
				w.flush(ctx, batch)
				batch = make([]string, 0, warmBatchSize)
			}
		case <-ticker.C:
			if len(batch) > 0 {
				w.flush(ctx, batch)
				batch = make([]string, 0, warmBatchSize)
			}
		case <-ctx.Done():
			logrus.Info("shutting down cache warmer, flushing remaining ids...")
			w.drain(context.WithoutCancel(ctx), batch)
			return
		}
	}
}

// Done is closed once Start has returned
func (w *cacheWarmer) Done() <-chan struct{} {
	return w.done
}

func (w *cacheWarmer) drain(ctx context.Context, batch []string) {
	for {
		select {
		case id := <-w.ch:
			batch = append(batch, id)
		default:
			if len(batch) > 0 {
				w.flush(ctx, batch)
			}
			return
		}
	}
}

func (w *cacheWarmer) flush(ctx context.Context, batch []string) {
	seen := make(map[string]bool, len(batch))
	ids := make([]string, 0, len(batch))
	for _, id := range batch {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}

	cached, err := w.cache.GetPosts(ctx, ids)
	if err != nil {
		logrus.Warnf("cache warmer: post cache unavailable: %v", err)
		return
	}
	missing := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := cached[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) == 0 {
		return
	}

	posts, err := w.posts.FindMany(ctx, domain.PostFilter{IDs: missing})
	if err != nil {
		logrus.Warnf("cache warmer: failed to load %d posts: %v", len(missing), err)
		return
	}
	if len(posts) == 0 {
		return
	}
	if err := w.cache.BatchSetPost(ctx, posts); err != nil {
		logrus.Warnf("cache warmer: failed to write %d posts: %v", len(posts), err)
	}
}
