// Package models defines the movie record and its backend specific shapes.
//
//   - Movie / Draft: the camelCase record exchanged with the REST backend and cached by the client.
//   - Row: the snake_case Supabase row (in_theaters, created_at), converted with RowFromMovie and
//     Row.ToMovie.
//   - Record: the gorm model persisted by the mock REST server's database store.
//
// AverageRating implements the catalog's aggregate: only positive ratings count.
package models
