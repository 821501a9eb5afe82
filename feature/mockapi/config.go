package mockapi

// Config holds configuration for the embedded mock REST server.
type Config struct {
	// Store selects the persistence backend: file, object or database.
	Store string `mapstructure:"store" default:"file"`
	// Collection is the resource name served at /{collection}.
	Collection string `mapstructure:"collection" default:"items"`
	// File is the path of the db.json document for the file store.
	File string `mapstructure:"file" default:"db.json"`
	// Object is the object key of the db.json document in the storage bucket.
	Object string `mapstructure:"object" default:"db.json"`
	// Seed is an optional JSON array of movies loaded when the store is empty.
	Seed string `mapstructure:"seed" default:""`
}

const (
	StoreFile     = "file"
	StoreObject   = "object"
	StoreDatabase = "database"
)
