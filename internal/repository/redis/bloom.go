package redis

import (
	"context"
	"errors"
	"hash/crc32"
	"hash/fnv"

	"github.com/redis/go-redis/v9"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
)

const bloomHashes = 3

// enableBloomScript 禁用计数未变化时才删除禁用标记
var enableBloomScript = redis.NewScript(`
local v = redis.call('GET', KEYS[1]) or '0'
if v ~= ARGV[1] then return 0 end
redis.call('DEL', KEYS[1])
return 1
`)

// redisBloomRepo 位图保存在key中, 禁用计数保存在key+":disabled"中
type redisBloomRepo struct {
	client      *redis.Client
	key         string
	disabledKey string
	bitSize     uint64
}

var _ domain.BloomRepository = (*redisBloomRepo)(nil)

func NewRedisBloomRepo(client *redis.Client, key string, bitSize uint64) *redisBloomRepo {
	return &redisBloomRepo{
		client:      client,
		key:         key,
		disabledKey: key + ":disabled",
		bitSize:     bitSize,
	}
}

func (r *redisBloomRepo) Add(ctx context.Context, id string) error {
	return r.BulkAdd(ctx, []string{id})
}

func (r *redisBloomRepo) BulkAdd(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := r.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, id := range ids {
			for _, off := range r.offsets(id) {
				pipe.SetBit(ctx, r.key, int64(off), 1)
			}
		}
		return nil
	})
	return err
}

// Exists 禁用标记和位在同一个pipeline里读取
func (r *redisBloomRepo) Exists(ctx context.Context, id string) (bool, error) {
	var (
		disabled *redis.IntCmd
		bits     []*redis.IntCmd
	)
	_, err := r.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		disabled = pipe.Exists(ctx, r.disabledKey)
		for _, off := range r.offsets(id) {
			bits = append(bits, pipe.GetBit(ctx, r.key, int64(off)))
		}
		return nil
	})
	if err != nil {
		return false, err
	}

	if disabled.Val() > 0 {
		return true, nil
	}
	for _, bit := range bits {
		if bit.Val() == 0 {
			return false, nil
		}
	}
	return true, nil
}

func (r *redisBloomRepo) Disable(ctx context.Context) error {
	return r.client.Incr(ctx, r.disabledKey).Err()
}

func (r *redisBloomRepo) DisabledVersion(ctx context.Context) (int64, error) {
	v, err := r.client.Get(ctx, r.disabledKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return v, err
}

func (r *redisBloomRepo) Enable(ctx context.Context, version int64) (bool, error) {
	res, err := enableBloomScript.Run(ctx, r.client, []string{r.disabledKey}, version).Int()
	if err != nil {
		return false, err
	}
	return res == 1, nil
}

// offsets 用CRC32, FNV64以及两者的线性混合得到k个位置
func (r *redisBloomRepo) offsets(id string) [bloomHashes]uint64 {
	data := []byte(id)

	h := fnv.New64()
	_, _ = h.Write(data)

	a := uint64(crc32.ChecksumIEEE(data)) % r.bitSize
	b := h.Sum64() % r.bitSize
	return [bloomHashes]uint64{a, b, (a + b + 0xABC) % r.bitSize}
}
