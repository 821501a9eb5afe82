// Package loader registers and loads the application's features.
//
// Each feature implements Feature; the Manager loads the enabled ones in registration
// order and stops at the first failure.
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
package loader
