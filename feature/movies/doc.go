// Package movies implements the movie catalog client.
//
// The Coordinator owns an optimistic cache of movies. Every mutation is applied to the
// cache first, sent to the remote store, then either reconciled with the server record
// or rolled back to the exact snapshot taken before the change.
//
// # Components
//
//   - Coordinator: optimistic create, update, delete and rating changes; stats.
//   - Handler: the /catalog HTTP surface.
//   - Feature: registers the handler with the loader.
//
// # HTTP Endpoints
//
//   - GET    /catalog/movies            : cached movies, refetched when stale.
//   - POST   /catalog/movies/refresh    : force a reload.
//   - POST   /catalog/movies            : create from a validated form.
//   - PUT    /catalog/movies/:id        : replace a movie.
//   - DELETE /catalog/movies/:id        : delete a movie.
//   - PUT    /catalog/movies/:id/rating : change only the rating.
//   - GET    /catalog/stats             : total and average rating.
//   - GET    /catalog/notifications     : visible notifications.
package movies
