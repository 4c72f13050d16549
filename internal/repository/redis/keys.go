package redis

// Keys builds cache keys under an optional namespace, so several environments
// can share one Redis database. The zero value produces bare keys.
type Keys struct {
	Namespace string
}

func (k Keys) Post(id string) string {
	return k.key("post:" + id)
}

func (k Keys) PostBloom() string {
	return k.key("bloom:post:ids")
}

func (k Keys) key(s string) string {
	if k.Namespace == "" {
		return s
	}
	return k.Namespace + ":" + s
}
