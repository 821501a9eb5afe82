package config

import (
	"fmt"
	"reflect"
	"strings"

	"movie-catalog/core/cache"
	"movie-catalog/core/database"
	"movie-catalog/core/logger"
	"movie-catalog/core/server"
	"movie-catalog/core/storage"
	"movie-catalog/feature/mockapi"
	"movie-catalog/feature/movies/remote"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application, one section per component.
type Config struct {
	Server   server.Config   `mapstructure:"server"`
	Log      logger.Config   `mapstructure:"log"`
	Database database.Config `mapstructure:"database"`
	// Storage is the MinIO/S3 bucket used by the object document store.
	Storage storage.Config `mapstructure:"storage"`
	// Remote selects the backend the catalog coordinator talks to.
	Remote remote.Config `mapstructure:"remote"`
	// Mock configures the embedded json-server replacement.
	Mock mockapi.Config `mapstructure:"mock"`
	// Cache enables the optional Redis list cache of the mock server.
	Cache cache.Config `mapstructure:"cache"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// A missing .env is fine; the environment alone may configure everything.
	_ = godotenv.Overload(envPath)

	v := viper.New()

	bindValues(v, Config{}, "")

	// REMOTE_BASE_URL -> remote.base_url
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}

	return &config, nil
}

// bindValues registers every mapstructure key with its `default` tag value, recursing into sections.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Empty defaults are still set so AutomaticEnv knows the key.
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
