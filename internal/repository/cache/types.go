package cache

import "time"

// Entry 支持逻辑过期的缓存条目
type Entry[T any] struct {
	Data      T         `json:"data"`
	ExpireAt  time.Time `json:"expire_at"`  // 逻辑过期时间
	CreatedAt time.Time `json:"created_at"` // 写入时间，用于调试
}

// IsLogicalExpired reports whether the entry should be rebuilt. Expired
// entries are still served until the rebuild lands.
func (e *Entry[T]) IsLogicalExpired(now time.Time) bool {
	return now.After(e.ExpireAt)
}

// NewEntry wraps data with a logical expiry ttl after now
func NewEntry[T any](data T, now time.Time, ttl time.Duration) *Entry[T] {
	return &Entry[T]{
		Data:      data,
		ExpireAt:  now.Add(ttl),
		CreatedAt: now,
	}
}

// PhysicalTTL is how long redis keeps an entry whose logical ttl is ttl.
// The margin leaves room to serve stale data while it is rebuilt.
func PhysicalTTL(ttl time.Duration) time.Duration {
	return 2 * ttl
}
