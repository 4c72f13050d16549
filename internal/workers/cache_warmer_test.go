package workers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Guyuepp/fritter/domain"
	"github.com/Guyuepp/fritter/domain/mocks"
)

func TestFlushWritesOnlyMissingPosts(t *testing.T) {
	posts := new(mocks.PostRepository)
	cache := new(mocks.PostCache)

	cache.On("GetPosts", mock.Anything, []string{"a", "b", "c"}).
		Return(map[string]domain.Post{"b": {ID: "b"}}, nil).Once()
	posts.On("FindMany", mock.Anything, domain.PostFilter{IDs: []string{"a", "c"}}).
		Return([]domain.Post{{ID: "a"}}, nil).Once()
	cache.On("BatchSetPost", mock.Anything, []domain.Post{{ID: "a"}}).Return(nil).Once()

	w := NewCacheWarmer(posts, cache)
	w.flush(context.TODO(), []string{"a", "b", "a", "c"})

	posts.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestFlushSkipsWhenEverythingIsCached(t *testing.T) {
	posts := new(mocks.PostRepository)
	cache := new(mocks.PostCache)

	cache.On("GetPosts", mock.Anything, []string{"a"}).Return(map[string]domain.Post{"a": {ID: "a"}}, nil).Once()

	w := NewCacheWarmer(posts, cache)
	w.flush(context.TODO(), []string{"a"})
	posts.AssertNotCalled(t, "FindMany", mock.Anything, mock.Anything)
}

func TestFlushGivesUpWhenCacheIsDown(t *testing.T) {
	posts := new(mocks.PostRepository)
	cache := new(mocks.PostCache)

	cache.On("GetPosts", mock.Anything, mock.Anything).Return(nil, assert.AnError).Once()

	w := NewCacheWarmer(posts, cache)
	w.flush(context.TODO(), []string{"a"})
	posts.AssertNotCalled(t, "FindMany", mock.Anything, mock.Anything)
	cache.AssertNotCalled(t, "BatchSetPost", mock.Anything, mock.Anything)
}

func TestSendDropsWhenFull(t *testing.T) {
	w := NewCacheWarmer(nil, nil)
	for range warmQueueSize + 10 {
		w.Send("x")
	}
	assert.Len(t, w.ch, warmQueueSize)
}

func TestStartFlushesOnShutdown(t *testing.T) {
	posts := new(mocks.PostRepository)
	cache := new(mocks.PostCache)

	cache.On("GetPosts", mock.Anything, []string{"a", "b"}).Return(map[string]domain.Post{}, nil).Once()
	posts.On("FindMany", mock.Anything, domain.PostFilter{IDs: []string{"a", "b"}}).
		Return([]domain.Post{{ID: "a"}, {ID: "b"}}, nil).Once()
	cache.On("BatchSetPost", mock.Anything, mock.Anything).Return(nil).Once()

	w := NewCacheWarmer(posts, cache)
	w.Send("a", "b")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	go w.Start(ctx)

	select {
	case <-w.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("warmer did not stop")
	}
	cache.AssertExpectations(t)
	posts.AssertExpectations(t)
}
