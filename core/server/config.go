package server

import "strings"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the catalog API. Empty disables the check.
	ApiKey string `mapstructure:"api_key" default:""`
	// AllowOrigins is the value of Access-Control-Allow-Origin sent by the CORS middleware.
	AllowOrigins string `mapstructure:"allow_origins" default:"*"`
	// Features is a comma separated list of features to load (mock, catalog).
	Features string `mapstructure:"features" default:"mock,catalog"`
}

const (
	FeatureMock    = "mock"
	FeatureCatalog = "catalog"
)

// Address returns the listen address for the configured port.
func (c Config) Address() string {
	return ":" + strings.TrimPrefix(c.Port, ":")
}

// FeatureEnabled reports whether the named feature is listed in Features.
func (c Config) FeatureEnabled(name string) bool {
	for _, f := range strings.Split(c.Features, ",") {
		if strings.EqualFold(strings.TrimSpace(f), name) {
			return true
		}
	}
	return false
}
