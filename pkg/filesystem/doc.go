// Package filesystem provides implementations of types.FS: the OS filesystem,
// whose writes replace files atomically, and an afero-backed one for tests.
package filesystem
