package mockapi

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"testing"
	"time"

	"movie-catalog/feature/movies/models"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewCachedStore_NilClient(t *testing.T) {
	inner := NewDocumentStore(&memoryDocument{}, "items")
	assert.Same(t, inner, NewCachedStore(inner, nil, "items", time.Minute, zap.NewNop()))
}

func TestCachedStore_FallsThroughWhenRedisIsDown(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = rdb.Close() })

	ctx := context.Background()
	inner := NewDocumentStore(&memoryDocument{}, "items")
	s := NewCachedStore(inner, rdb, "items", time.Minute, zap.NewNop())
	require.IsType(t, &CachedStore{}, s)

	created, err := s.Create(ctx, models.Movie{Name: "Dune"})
	require.NoError(t, err)

	movies, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Movie{created}, movies)

	created.Rating = 3
	_, err = s.Update(ctx, created)
	require.NoError(t, err)

	got, err := s.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 3.0, got.Rating)

	require.NoError(t, s.Delete(ctx, created.ID))
	movies, err = s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, movies)
}

// memoryRedis answers the commands CachedStore sends without a server.
type memoryRedis struct {
	mu   sync.Mutex
	data map[string]string
}

func newMemoryRedis(t *testing.T) *redis.Client {
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	rdb.AddHook(&memoryRedis{data: map[string]string{}})
	t.Cleanup(func() { _ = rdb.Close() })
	return rdb
}

func (m *memoryRedis) DialHook(next redis.DialHook) redis.DialHook { return next }

func (m *memoryRedis) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return next
}

func (m *memoryRedis) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		m.mu.Lock()
		defer m.mu.Unlock()

		args := cmd.Args()
		switch cmd.Name() {
		case "mget":
			vals := make([]interface{}, len(args)-1)
			for i, k := range args[1:] {
				if v, ok := m.data[k.(string)]; ok {
					vals[i] = v
				}
			}
			cmd.(*redis.SliceCmd).SetVal(vals)
		case "set":
			m.data[args[1].(string)] = toString(args[2])
			cmd.(*redis.StatusCmd).SetVal("OK")
		case "del":
			var n int64
			for _, k := range args[1:] {
				if _, ok := m.data[k.(string)]; ok {
					delete(m.data, k.(string))
					n++
				}
			}
			cmd.(*redis.IntCmd).SetVal(n)
		case "incr":
			n, _ := strconv.ParseInt(m.data[args[1].(string)], 10, 64)
			n++
			m.data[args[1].(string)] = strconv.FormatInt(n, 10)
			cmd.(*redis.IntCmd).SetVal(n)
		default:
			cmd.SetErr(fmt.Errorf("unsupported command %s", cmd.Name()))
		}
		return cmd.Err()
	}
}

func toString(v interface{}) string {
	switch v := v.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return fmt.Sprint(v)
	}
}

// countingStore counts List calls and can run a write while a List is in flight.
type countingStore struct {
	Store
	lists  int
	onList func()
}

func (s *countingStore) List(ctx context.Context) ([]models.Movie, error) {
	s.lists++
	movies, err := s.Store.List(ctx)
	if f := s.onList; f != nil {
		s.onList = nil
		f()
	}
	return movies, err
}

func TestCachedStore_ServesListFromRedis(t *testing.T) {
	ctx := context.Background()
	inner := &countingStore{Store: NewDocumentStore(&memoryDocument{}, "items")}
	s := NewCachedStore(inner, newMemoryRedis(t), "items", time.Minute, zap.NewNop())

	created, err := s.Create(ctx, models.Movie{Name: "Dune"})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		movies, err := s.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []models.Movie{created}, movies)
	}
	assert.Equal(t, 1, inner.lists)

	require.NoError(t, s.Delete(ctx, created.ID))
	movies, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, movies)
	assert.Equal(t, 2, inner.lists)
}

func TestCachedStore_IgnoresListLoadedDuringWrite(t *testing.T) {
	ctx := context.Background()
	inner := &countingStore{Store: NewDocumentStore(&memoryDocument{}, "items")}
	s := NewCachedStore(inner, newMemoryRedis(t), "items", time.Minute, zap.NewNop())

	var created models.Movie
	inner.onList = func() {
		var err error
		created, err = s.Create(ctx, models.Movie{Name: "Dune"})
		require.NoError(t, err)
	}

	// Loaded before the create landed.
	movies, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, movies)

	movies, err = s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Movie{created}, movies)
	assert.Equal(t, 2, inner.lists)
}
