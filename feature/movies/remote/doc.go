// Package remote implements the movie data accessors.
//
// An Accessor performs list, create, update and delete against a remote store, one round trip
// per call, and normalizes the response into models.Movie. Two backends are available:
//
//   - RESTClient: a json-server style collection (GET/POST on /items, PUT/DELETE on /items/:id).
//   - SupabaseClient: a PostgREST table (/rest/v1/movies) with apikey auth, id.desc ordering,
//     Prefer: return=representation and snake_case rows translated by models.Row.
//
// Every failure is a *RemoteError carrying the HTTP status (0 for transport failures) and the
// backend message. errors.Is(err, ErrNotFound) matches 404 responses. No call is retried.
package remote
