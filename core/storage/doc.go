// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client to provide the small interface the mock REST server needs to keep
// its JSON document (db.json) in a bucket. This abstraction supports both AWS S3 and self-hosted
// MinIO instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier to mock
// storage interactions for unit testing (see core/storage/mocks).
//
//   - BucketExists / MakeBucket: used by EnsureBucket at startup.
//   - GetObject: retrieves content as a stream; missing keys map to ErrObjectNotFound.
//   - PutObject: uploads content (with size and options).
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	err = storage.EnsureBucket(ctx, client, "catalog", "")
package storage
