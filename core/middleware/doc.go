// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - auth: API key validation for the catalog endpoints. Preflight requests pass.
//   - cors: permissive CORS headers; OPTIONS is answered with a bare 200.
//   - rayid: a unique request id stored in the fiber locals and echoed in X-Ray-ID.
package middleware
