package redis

import (
	"context"
	"fmt"
	"hash/crc32"
	"hash/fnv"

	"github.com/redis/go-redis/v9"

	"github.com/Guyuepp/go-clean-forum/domain"
)

const (
	KeyPostBloom = "bloom:post:ids"

	bloomHashes = 3
)

type postBloomRepo struct {
	client       *redis.Client
	BloomBitSize uint64
}

var _ domain.BloomRepository = (*postBloomRepo)(nil)

func NewPostBloomRepo(client *redis.Client, bitSize uint64) *postBloomRepo {
	if bitSize == 0 {
		bitSize = 1 << 24
	}
	return &postBloomRepo{
		client:       client,
		BloomBitSize: bitSize,
	}
}

func (r *postBloomRepo) Add(ctx context.Context, id int64) error {
	return r.BulkAdd(ctx, []int64{id})
}

func (r *postBloomRepo) Exists(ctx context.Context, id int64) (bool, error) {
	pipe := r.client.Pipeline()
	for _, offset := range r.offsets(id) {
		pipe.GetBit(ctx, KeyPostBloom, int64(offset))
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

func (r *postBloomRepo) BulkAdd(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	pipe := r.client.Pipeline()
	for _, id := range ids {
		for _, offset := range r.offsets(id) {
			pipe.SetBit(ctx, KeyPostBloom, int64(offset), 1)
		}
	}
	_, err := pipe.Exec(ctx)
	return err
}

// offsets 双重哈希: g_i(x) = h1(x) + i*h2(x)
func (r *postBloomRepo) offsets(id int64) []uint64 {
	data := fmt.Appendf(nil, "%d", id)

	h1 := uint64(crc32.ChecksumIEEE(data))
	f := fnv.New64a()
	_, _ = f.Write(data)
	h2 := f.Sum64() | 1

	res := make([]uint64, bloomHashes)
	for i := range res {
		res[i] = (h1 + uint64(i)*h2) % r.BloomBitSize
	}
	return res
}
