// Package cache wires the optional Redis client used to cache mock REST list responses.
//
// Redis is never required: NewRedis returns nil when no address is configured or when the
// server does not answer a ping, and callers skip caching in that case.
package cache
