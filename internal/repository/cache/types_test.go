package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEntryLogicalExpire(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	e := NewEntry("x", now, time.Minute)

	assert.Equal(t, now, e.CreatedAt)
	assert.False(t, e.IsLogicalExpired(now))
	assert.False(t, e.IsLogicalExpired(now.Add(time.Minute)))
	assert.True(t, e.IsLogicalExpired(now.Add(time.Minute+time.Nanosecond)))
	assert.Equal(t, 2*time.Minute, PhysicalTTL(time.Minute))
}
