// Package server holds the HTTP server configuration and constants.
//
// While the start command handles the server startup, this package defines the configuration
// structures and valid values for server settings, such as the names of loadable features.
//
// # Configuration
//
// The Config struct defines the HTTP port, the optional API key protecting the catalog routes,
// the CORS origin and the list of features to load (mock REST server, catalog).
package server
