// Package config loads the application configuration.
//
// Values come from a .env file (when present) and the environment, mapped with viper.
// Every field declares its key with a `mapstructure` tag and its fallback with a `default` tag;
// nested sections map to underscore separated variables (REMOTE_BASE_URL -> remote.base_url).
//
// # Sections
//
//   - server: listen port, API key, CORS origin, enabled features
//   - log: level and format
//   - database: driver and connection for the mock server's database store
//   - storage: MinIO/S3 bucket for the mock server's object store
//   - remote: backend used by the catalog coordinator (rest or supabase)
//   - mock: store selection, collection name, document locations, seed file
//   - cache: optional Redis list cache
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Remote.BaseURL)
package config
