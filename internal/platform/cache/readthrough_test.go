package cache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	Name string `json:"name"`
}

// TestGetOrLoad_NilRedis はRedisがnilの場合にloadを直接呼び出すことを検証します。
func TestGetOrLoad_NilRedis(t *testing.T) {
	t.Parallel()

	calls := 0
	out, err := GetOrLoad(context.Background(), nil, "k", time.Minute, func(context.Context) ([]item, error) {
		calls++
		return []item{{Name: "a"}}, nil
	})

	require.NoError(t, err)
	assert.Equal(t, []item{{Name: "a"}}, out)
	assert.Equal(t, 1, calls)
}

// TestGetOrLoad_CacheHit はキャッシュヒット時にloadを呼ばないことを検証します。
func TestGetOrLoad_CacheHit(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	b, _ := json.Marshal([]item{{Name: "cached"}})
	mock.ExpectGet("ns:k").SetVal(string(b))

	out, err := GetOrLoad(context.Background(), rdb, "ns:k", time.Minute, func(context.Context) ([]item, error) {
		t.Fatal("load must not be called on a cache hit")
		return nil, nil
	})

	require.NoError(t, err)
	assert.Equal(t, []item{{Name: "cached"}}, out)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestGetOrLoad_CacheMiss はキャッシュミス時にloadの結果を保存することを検証します。
func TestGetOrLoad_CacheMiss(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	want := []item{{Name: "loaded"}}
	b, _ := json.Marshal(want)
	mock.ExpectGet("ns:k").RedisNil()
	mock.ExpectSet("ns:k", b, time.Minute).SetVal("OK")

	out, err := GetOrLoad(context.Background(), rdb, "ns:k", time.Minute, func(context.Context) ([]item, error) {
		return want, nil
	})

	require.NoError(t, err)
	assert.Equal(t, want, out)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestGetOrLoad_CorruptedEntry は壊れたキャッシュを削除して再読み込みすることを検証します。
func TestGetOrLoad_CorruptedEntry(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	want := []item{{Name: "fresh"}}
	b, _ := json.Marshal(want)
	mock.ExpectGet("ns:k").SetVal("{not json")
	mock.ExpectDel("ns:k").SetVal(1)
	mock.ExpectSet("ns:k", b, time.Minute).SetVal("OK")

	out, err := GetOrLoad(context.Background(), rdb, "ns:k", time.Minute, func(context.Context) ([]item, error) {
		return want, nil
	})

	require.NoError(t, err)
	assert.Equal(t, want, out)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestGetOrLoad_LoadError はloadのエラーをそのまま返し、キャッシュしないことを検証します。
func TestGetOrLoad_LoadError(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	mock.ExpectGet("ns:k").RedisNil()

	_, err := GetOrLoad(context.Background(), rdb, "ns:k", time.Minute, func(context.Context) ([]item, error) {
		return nil, errors.New("db down")
	})

	assert.EqualError(t, err, "db down")
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestDeleteByPattern はSCANで見つかったキーを削除することを検証します。
func TestDeleteByPattern(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	mock.ExpectScan(0, "catalog:*", 200).SetVal([]string{"catalog:a", "catalog:b"}, 0)
	mock.ExpectDel("catalog:a", "catalog:b").SetVal(2)

	require.NoError(t, DeleteByPattern(context.Background(), rdb, "catalog:*"))
	assert.NoError(t, mock.ExpectationsWereMet())
	assert.NoError(t, DeleteByPattern(context.Background(), nil, "catalog:*"))
}

func TestKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "catalog:strategies:all", Key("catalog", "strategies", "all"))
	assert.Equal(t, "session:a_b:c_d", Key("session", "a:b", "c d"))
}
