package remote

// Config selects and configures the remote movie store.
type Config struct {
	// Backend is "rest" (json-server style) or "supabase".
	Backend string `mapstructure:"backend" default:"rest"`
	// BaseURL is the REST server root, e.g. http://localhost:3000.
	BaseURL string `mapstructure:"base_url" default:"http://localhost:8080"`
	// Collection is the REST resource name (items or movies).
	Collection string `mapstructure:"collection" default:"items"`
	// SupabaseURL is the project URL, e.g. https://xyz.supabase.co.
	SupabaseURL string `mapstructure:"supabase_url" default:""`
	// SupabaseKey is the anon or service key sent as apikey and bearer token.
	SupabaseKey string `mapstructure:"supabase_key" default:""`
	// Table is the Supabase table name.
	Table string `mapstructure:"table" default:"movies"`
	// TimeoutSeconds bounds each request. Zero keeps the transport defaults.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"10"`
}

const (
	BackendREST     = "rest"
	BackendSupabase = "supabase"
)
