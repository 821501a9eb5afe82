// Package form validates user input for movies before it reaches the remote store.
//
// MovieForm carries go-playground/validator tags; Validate and Decode return either a
// models.Draft or a *ValidationError keyed by JSON field name.
package form
