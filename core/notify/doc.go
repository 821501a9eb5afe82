// Package notify keeps transient user notifications.
//
// The mutation coordinator posts a success notification when a write is confirmed and an error
// notification when a write is rolled back. Each notification expires after its timeout
// (DefaultTimeout when none is given). The catalog HTTP feature exposes the visible list.
package notify
