package mockapi

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"movie-catalog/feature/movies/models"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// CachedStore serves List from Redis and bumps a version key on every write.
// A cached list is stamped with the version read before it was loaded, so a list
// loaded concurrently with a write is ignored instead of served until the TTL expires.
// Redis failures are logged and fall through to the wrapped store.
type CachedStore struct {
	Store
	rdb        *redis.Client
	key        string
	versionKey string
	ttl        time.Duration
	logger     *zap.Logger
}

type cachedList struct {
	Version int64          `json:"version"`
	Movies  []models.Movie `json:"movies"`
}

// NewCachedStore wraps store with a Redis cache-aside for List.
// A nil client returns store unchanged.
func NewCachedStore(store Store, rdb *redis.Client, collection string, ttl time.Duration, logger *zap.Logger) Store {
	if rdb == nil {
		return store
	}
	return &CachedStore{
		Store:      store,
		rdb:        rdb,
		key:        "mockapi:list:" + collection,
		versionKey: "mockapi:version:" + collection,
		ttl:        ttl,
		logger:     logger,
	}
}

func (s *CachedStore) List(ctx context.Context) ([]models.Movie, error) {
	var version int64
	vals, err := s.rdb.MGet(ctx, s.key, s.versionKey).Result()
	if err != nil {
		s.logger.Warn("Redis get failed", zap.String("key", s.key), zap.Error(err))
	} else {
		if v, ok := vals[1].(string); ok {
			version, _ = strconv.ParseInt(v, 10, 64)
		}
		if raw, ok := vals[0].(string); ok {
			var cached cachedList
			if jsonErr := json.Unmarshal([]byte(raw), &cached); jsonErr == nil && cached.Version == version {
				s.logger.Debug("Cache hit for movie list", zap.String("key", s.key))
				return cached.Movies, nil
			}
		}
	}

	movies, err := s.Store.List(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(cachedList{Version: version, Movies: movies}); err == nil {
		if err := s.rdb.Set(ctx, s.key, data, s.ttl).Err(); err != nil {
			s.logger.Warn("Redis set failed", zap.String("key", s.key), zap.Error(err))
		}
	}
	return movies, nil
}

func (s *CachedStore) Create(ctx context.Context, movie models.Movie) (models.Movie, error) {
	created, err := s.Store.Create(ctx, movie)
	if err == nil {
		s.invalidate(ctx)
	}
	return created, err
}

func (s *CachedStore) Update(ctx context.Context, movie models.Movie) (models.Movie, error) {
	updated, err := s.Store.Update(ctx, movie)
	if err == nil {
		s.invalidate(ctx)
	}
	return updated, err
}

func (s *CachedStore) Delete(ctx context.Context, id int64) error {
	err := s.Store.Delete(ctx, id)
	if err == nil {
		s.invalidate(ctx)
	}
	return err
}

func (s *CachedStore) invalidate(ctx context.Context) {
	if err := s.rdb.Incr(ctx, s.versionKey).Err(); err != nil {
		s.logger.Warn("Redis incr failed", zap.String("key", s.versionKey), zap.Error(err))
	}
	if err := s.rdb.Del(ctx, s.key).Err(); err != nil {
		s.logger.Warn("Redis del failed", zap.String("key", s.key), zap.Error(err))
	}
}
