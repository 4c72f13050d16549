package repository

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/Guyuepp/fritter/domain"
)

// CacheObserver is told about post cache lookups
type CacheObserver interface {
	CacheHit()
	CacheMiss()
}

// Warmer is handed the ids of posts returned by listings
type Warmer interface {
	Send(ids ...string)
}

// postRepository 协调层，协调缓存和数据库
// Single-post reads go through the cache; listings always hit the database
// so that ordering and existence stay authoritative.
type postRepository struct {
	db           domain.PostRepository
	cache        domain.PostCache
	bloom        domain.BloomRepository
	observer     CacheObserver
	warmer       Warmer
	rebuildGroup singleflight.Group
}

var _ domain.PostRepository = (*postRepository)(nil)

// NewPostRepository 创建协调层repository. bloom and observer may be nil.
func NewPostRepository(db domain.PostRepository, cache domain.PostCache, bloom domain.BloomRepository, observer CacheObserver) *postRepository {
	return &postRepository{
		db:       db,
		cache:    cache,
		bloom:    bloom,
		observer: observer,
	}
}

// WithWarmer makes listings feed their results to w
func (r *postRepository) WithWarmer(w Warmer) *postRepository {
	r.warmer = w
	return r
}

func (r *postRepository) Create(ctx context.Context, p *domain.Post) error {
	if err := r.db.Create(ctx, p); err != nil {
		return err
	}
	if r.bloom != nil {
		if err := r.bloom.Add(ctx, p.ID); err != nil {
			logrus.Errorf("failed to add post %s to bloom filter: %v", p.ID, err)
		}
	}
	if err := r.cache.SetPost(ctx, *p); err != nil {
		logrus.Warnf("failed to cache new post %s: %v", p.ID, err)
	}
	return nil
}

// FindByID 使用逻辑过期策略避免缓存击穿
func (r *postRepository) FindByID(ctx context.Context, id string) (domain.Post, error) {
	if !r.mayExist(ctx, id) {
		return domain.Post{}, domain.ErrNotFound
	}

	post, expired, err := r.cache.GetPost(ctx, id)
	if err == nil {
		r.hit()
		if expired {
			go r.rebuild(context.WithoutCancel(ctx), id)
		}
		return post, nil
	}
	if !errors.Is(err, domain.ErrCacheMiss) {
		logrus.Warnf("post cache unavailable for %s: %v", id, err)
	}
	r.miss()

	// 缓存未命中，使用singleflight避免缓存击穿
	res, err, _ := r.rebuildGroup.Do("post:"+id, func() (any, error) {
		return r.load(ctx, id)
	})
	if err != nil {
		return domain.Post{}, err
	}
	return res.(domain.Post), nil
}

func (r *postRepository) FindOne(ctx context.Context, f domain.PostFilter) (domain.Post, error) {
	return r.db.FindOne(ctx, f)
}

func (r *postRepository) FindMany(ctx context.Context, f domain.PostFilter) ([]domain.Post, error) {
	posts, err := r.db.FindMany(ctx, f)
	if err != nil || r.warmer == nil || len(posts) == 0 {
		return posts, err
	}
	ids := make([]string, len(posts))
	for i := range posts {
		ids[i] = posts[i].ID
	}
	r.warmer.Send(ids...)
	return posts, nil
}

func (r *postRepository) UpdateByID(ctx context.Context, id string, p domain.PostPatch) (domain.Post, error) {
	post, err := r.db.UpdateByID(ctx, id, p)
	r.invalidate(ctx, id)
	return post, err
}

func (r *postRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	ok, err := r.db.DeleteByID(ctx, id)
	r.invalidate(ctx, id)
	return ok, err
}

// DeleteMany looks the ids up first so their cache entries can be dropped
func (r *postRepository) DeleteMany(ctx context.Context, f domain.PostFilter) (int64, error) {
	posts, err := r.db.FindMany(ctx, f)
	if err != nil {
		return 0, err
	}
	n, err := r.db.DeleteMany(ctx, f)
	ids := make([]string, len(posts))
	for i := range posts {
		ids[i] = posts[i].ID
	}
	r.invalidate(ctx, ids...)
	return n, err
}

func (r *postRepository) FetchIDs(ctx context.Context, after int64, limit int) ([]string, int64, error) {
	return r.db.FetchIDs(ctx, after, limit)
}

func (r *postRepository) load(ctx context.Context, id string) (domain.Post, error) {
	post, err := r.db.FindByID(ctx, id)
	if err != nil {
		return domain.Post{}, err
	}
	if err := r.cache.SetPost(ctx, post); err != nil {
		logrus.Warnf("failed to cache post %s: %v", id, err)
	}
	return post, nil
}

// rebuild 异步重建过期的缓存
func (r *postRepository) rebuild(ctx context.Context, id string) {
	_, err, _ := r.rebuildGroup.Do("rebuild:"+id, func() (any, error) {
		post, err := r.load(ctx, id)
		if errors.Is(err, domain.ErrNotFound) {
			// 文章不存在，删除缓存
			r.invalidate(ctx, id)
		}
		return post, err
	})
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		logrus.Errorf("rebuild post cache failed for id %s: %v", id, err)
	}
}

// mayExist asks the bloom filter. Filter errors are treated as "maybe".
func (r *postRepository) mayExist(ctx context.Context, id string) bool {
	if r.bloom == nil {
		return true
	}
	ok, err := r.bloom.Exists(ctx, id)
	if err != nil {
		logrus.Warnf("bloom filter unavailable for post %s: %v", id, err)
		return true
	}
	return ok
}

// InitBloomFilter pages through every stored post id into the bloom filter
func (r *postRepository) InitBloomFilter(ctx context.Context, batch int) error {
	if r.bloom == nil {
		return nil
	}
	var after int64
	for {
		ids, last, err := r.db.FetchIDs(ctx, after, batch)
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}
		if err := r.bloom.BulkAdd(ctx, ids); err != nil {
			return err
		}
		after = last
	}
}

// invalidate runs before returning so a following read cannot see the old post
func (r *postRepository) invalidate(ctx context.Context, ids ...string) {
	if err := r.cache.DeletePost(ctx, ids...); err != nil {
		logrus.Errorf("failed to invalidate post cache %v: %v", ids, err)
	}
}

func (r *postRepository) hit() {
	if r.observer != nil {
		r.observer.CacheHit()
	}
}

func (r *postRepository) miss() {
	if r.observer != nil {
		r.observer.CacheMiss()
	}
}
