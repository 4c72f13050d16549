package redis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeys(t *testing.T) {
	tests := []struct {
		name      string
		keys      Keys
		post      string
		postBloom string
	}{
		{"bare", Keys{}, "post:p1", "bloom:post:ids"},
		{"namespaced", Keys{Namespace: "prod"}, "prod:post:p1", "prod:bloom:post:ids"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.post, tt.keys.Post("p1"))
			assert.Equal(t, tt.postBloom, tt.keys.PostBloom())
		})
	}
}
