// Package types holds the small interfaces shared between the engine and its
// storage backends.
package types
