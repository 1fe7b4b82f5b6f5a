package redis

import (
	"context"
	"errors"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testBloomKey         = "bloom:thread:ids"
	testBloomDisabledKey = "bloom:thread:ids:disabled"
)

func TestBloomOffsets(t *testing.T) {
	r := NewRedisBloomRepo(nil, testBloomKey, 1<<20)

	a := r.offsets("thread-123")
	assert.Equal(t, a, r.offsets("thread-123"))
	for _, off := range a {
		assert.Less(t, off, uint64(1<<20))
	}
	assert.NotEqual(t, a, r.offsets("thread-124"))
}

func TestBloomAdd(t *testing.T) {
	client, mock := redismock.NewClientMock()
	r := NewRedisBloomRepo(client, testBloomKey, 1<<20)

	for _, off := range r.offsets("thread-123") {
		mock.ExpectSetBit(testBloomKey, int64(off), 1).SetVal(0)
	}

	require.NoError(t, r.Add(context.TODO(), "thread-123"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBloomExists(t *testing.T) {
	t.Run("all bits set", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		r := NewRedisBloomRepo(client, testBloomKey, 1<<20)
		mock.ExpectExists(testBloomDisabledKey).SetVal(0)
		for _, off := range r.offsets("thread-123") {
			mock.ExpectGetBit(testBloomKey, int64(off)).SetVal(1)
		}

		ok, err := r.Exists(context.TODO(), "thread-123")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("one bit clear", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		r := NewRedisBloomRepo(client, testBloomKey, 1<<20)
		offsets := r.offsets("thread-404")
		mock.ExpectExists(testBloomDisabledKey).SetVal(0)
		mock.ExpectGetBit(testBloomKey, int64(offsets[0])).SetVal(1)
		mock.ExpectGetBit(testBloomKey, int64(offsets[1])).SetVal(0)
		mock.ExpectGetBit(testBloomKey, int64(offsets[2])).SetVal(1)

		ok, err := r.Exists(context.TODO(), "thread-404")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("disabled filter answers maybe", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		r := NewRedisBloomRepo(client, testBloomKey, 1<<20)
		mock.ExpectExists(testBloomDisabledKey).SetVal(1)
		for _, off := range r.offsets("thread-404") {
			mock.ExpectGetBit(testBloomKey, int64(off)).SetVal(0)
		}

		ok, err := r.Exists(context.TODO(), "thread-404")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("redis error", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		r := NewRedisBloomRepo(client, testBloomKey, 1<<20)
		offsets := r.offsets("thread-123")
		mock.ExpectExists(testBloomDisabledKey).SetVal(0)
		mock.ExpectGetBit(testBloomKey, int64(offsets[0])).SetErr(errors.New("connection refused"))

		_, err := r.Exists(context.TODO(), "thread-123")
		assert.Error(t, err)
	})
}

func TestBloomBulkAdd(t *testing.T) {
	client, mock := redismock.NewClientMock()
	r := NewRedisBloomRepo(client, testBloomKey, 1<<20)

	require.NoError(t, r.BulkAdd(context.TODO(), nil))

	ids := []string{"thread-1", "thread-2"}
	for _, id := range ids {
		for _, off := range r.offsets(id) {
			mock.ExpectSetBit(testBloomKey, int64(off), 1).SetVal(0)
		}
	}

	require.NoError(t, r.BulkAdd(context.TODO(), ids))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBloomDisable(t *testing.T) {
	client, mock := redismock.NewClientMock()
	r := NewRedisBloomRepo(client, testBloomKey, 1<<20)
	mock.ExpectIncr(testBloomDisabledKey).SetVal(1)

	require.NoError(t, r.Disable(context.TODO()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBloomDisabledVersion(t *testing.T) {
	t.Run("disabled before", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		mock.ExpectGet(testBloomDisabledKey).SetVal("2")

		v, err := NewRedisBloomRepo(client, testBloomKey, 1<<20).DisabledVersion(context.TODO())
		require.NoError(t, err)
		assert.Equal(t, int64(2), v)
	})

	t.Run("never disabled", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		mock.ExpectGet(testBloomDisabledKey).RedisNil()

		v, err := NewRedisBloomRepo(client, testBloomKey, 1<<20).DisabledVersion(context.TODO())
		require.NoError(t, err)
		assert.Zero(t, v)
	})
}

func TestBloomEnable(t *testing.T) {
	t.Run("version unchanged", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		mock.ExpectEvalSha(enableBloomScript.Hash(), []string{testBloomDisabledKey}, int64(2)).SetVal(int64(1))

		ok, err := NewRedisBloomRepo(client, testBloomKey, 1<<20).Enable(context.TODO(), 2)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("disabled again meanwhile", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		mock.ExpectEvalSha(enableBloomScript.Hash(), []string{testBloomDisabledKey}, int64(2)).SetVal(int64(0))

		ok, err := NewRedisBloomRepo(client, testBloomKey, 1<<20).Enable(context.TODO(), 2)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
