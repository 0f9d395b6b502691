// Package inject is the content-upsert engine.
//
// A payload (an HTML fragment plus a marker substring unique to it) is
// upserted into targets so that each target carries at most one copy:
//
//   - FileInjector walks a publish directory and splices the payload into every
//     HTML page that does not already contain the marker.
//   - SnippetInjector keeps a single named snippet on the host platform equal to
//     the payload, creating or updating it only when it differs.
//
// The marker, or the snippet itself, is the only persisted state; re-running
// either injector is a no-op once the first run succeeded. Every per-target
// problem is recorded in the Report instead of aborting the run.
package inject
