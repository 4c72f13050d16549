package redis

import (
	"context"
	"hash/crc32"
	"hash/fnv"

	"github.com/redis/go-redis/v9"

	"github.com/Guyuepp/fritter/domain"
)

type redisBloomRepo struct {
	client       *redis.Client
	key          string
	BloomBitSize uint64
}

var _ domain.BloomRepository = (*redisBloomRepo)(nil)

func NewRedisBloomRepo(client *redis.Client, keys Keys, bitSize uint64) *redisBloomRepo {
	return &redisBloomRepo{
		client:       client,
		key:          keys.PostBloom(),
		BloomBitSize: max(bitSize, 1),
	}
}

func (r *redisBloomRepo) Add(ctx context.Context, id string) error {
	return r.BulkAdd(ctx, []string{id})
}

func (r *redisBloomRepo) Exists(ctx context.Context, id string) (bool, error) {
	offsets := r.getOffset(id)
	pipe := r.client.Pipeline()
	for _, offset := range offsets {
		pipe.GetBit(ctx, r.key, int64(offset))
	}
	cmds, err := pipe.Exec(ctx)
	if err != nil {
		return false, err
	}

	for _, cmd := range cmds {
		val, err := cmd.(*redis.IntCmd).Result()
		if err != nil {
			return false, err
		}
		if val == 0 {
			return false, nil
		}
	}

	return true, nil
}

// getOffset derives k=3 bit positions from two base hashes
func (r *redisBloomRepo) getOffset(id string) []uint64 {
	data := []byte(id)
	offsets := make([]uint64, 3)

	// Hash 1: CRC32
	offsets[0] = uint64(crc32.ChecksumIEEE(data)) % r.BloomBitSize

	// Hash 2: FNV64
	h := fnv.New64()
	h.Write(data)
	offsets[1] = h.Sum64() % r.BloomBitSize

	// Hash 3: 线性混合
	offsets[2] = (offsets[0] + offsets[1] + 0xABC) % r.BloomBitSize

	return offsets
}

func (r *redisBloomRepo) BulkAdd(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	pipe := r.client.Pipeline()
	for _, id := range ids {
		for _, offset := range r.getOffset(id) {
			pipe.SetBit(ctx, r.key, int64(offset), 1)
		}
	}

	_, err := pipe.Exec(ctx)
	return err
}
