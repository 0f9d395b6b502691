// Package testutil provides fixtures shared by package tests.
//
//   - SiteBuilder: declarative publish directory setup on any types.FS
//   - FakeSnippetStore: in-memory remote snippet API with call tracking
//   - FakeConfigStore: in-memory extension configuration store
//
// All fakes are safe for concurrent use and support error injection per
// method name.
package testutil
