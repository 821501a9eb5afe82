package mockapi

import (
	"context"
	"errors"
	"fmt"
	"time"

	"movie-catalog/core/storage"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Backends carries the connections a store may need. Unused ones may be nil.
type Backends struct {
	Storage storage.Client
	Bucket  string
	Region  string
	DB      *gorm.DB
	Redis   *redis.Client
	TTL     time.Duration
	Logger  *zap.Logger
}

// Open builds the store selected by cfg.Store and wraps it with the Redis cache when one is given.
func Open(ctx context.Context, cfg Config, b Backends) (Store, error) {
	var store Store

	switch cfg.Store {
	case StoreFile, "":
		store = NewDocumentStore(FileDocument{Path: cfg.File}, cfg.Collection)
	case StoreObject:
		if b.Storage == nil {
			return nil, errors.New("mockapi: object store requires a storage client")
		}
		if err := storage.EnsureBucket(ctx, b.Storage, b.Bucket, b.Region); err != nil {
			return nil, err
		}
		store = NewDocumentStore(NewObjectDocument(b.Storage, b.Bucket, cfg.Object), cfg.Collection)
	case StoreDatabase:
		if b.DB == nil {
			return nil, errors.New("mockapi: database store requires a database connection")
		}
		dbStore, err := NewDBStore(b.DB)
		if err != nil {
			return nil, err
		}
		store = dbStore
	default:
		return nil, fmt.Errorf("mockapi: unknown store %q", cfg.Store)
	}

	logger := b.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return NewCachedStore(store, b.Redis, cfg.Collection, b.TTL, logger), nil
}
