// Package mockapi implements an embedded json-server style REST backend for the catalog.
//
// A collection (default "items") is served at /{collection} with list, get, create,
// replace, patch and delete routes. Missing items answer 404 with an empty object.
//
// # Stores
//
//   - DocumentStore: the whole db.json document, read and rewritten under a mutex.
//     FileDocument keeps it on disk, ObjectDocument in a MinIO/S3 bucket.
//   - DBStore: a gorm table (mysql, postgres or sqlite).
//   - CachedStore: Redis cache-aside for List, dropped on every write.
package mockapi
