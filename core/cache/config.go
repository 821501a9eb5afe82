package cache

// Config holds configuration for the optional Redis response cache.
type Config struct {
	// RedisAddr is the host:port of the Redis server. Empty disables caching.
	RedisAddr string `mapstructure:"redis_addr" default:""`
	// Password is the Redis password.
	Password string `mapstructure:"password" default:""`
	// DB is the Redis database index.
	DB int `mapstructure:"db" default:"0"`
	// TTLSeconds is how long cached list responses live.
	TTLSeconds int `mapstructure:"ttl_seconds" default:"60"`
	// TimeoutSeconds bounds dial, read and write operations.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"2"`
}
