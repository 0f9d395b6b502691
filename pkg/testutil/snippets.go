package testutil

import (
	"context"
	"fmt"
	"sync"

	"github.com/superflow-dev/superflow-extension/pkg/netlify"
)

// FakeSnippetStore is an in-memory snippet API keyed by site id
type FakeSnippetStore struct {
	mu       sync.Mutex
	snippets map[string][]netlify.Snippet
	nextID   int
	calls    []string

	errorOn       string
	errorToReturn error
}

// NewFakeSnippetStore returns an empty store
func NewFakeSnippetStore() *FakeSnippetStore {
	return &FakeSnippetStore{
		snippets: make(map[string][]netlify.Snippet),
		nextID:   1,
	}
}

// Seed stores s for siteID as if it had been created remotely
func (f *FakeSnippetStore) Seed(siteID string, s netlify.Snippet) netlify.Snippet {
	f.mu.Lock()
	defer f.mu.Unlock()

	if s.ID == 0 {
		s.ID = f.nextID
	}
	if s.ID >= f.nextID {
		f.nextID = s.ID + 1
	}
	f.snippets[siteID] = append(f.snippets[siteID], s)
	return s
}

// SetError makes the named method fail with err
func (f *FakeSnippetStore) SetError(method string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.errorOn = method
	f.errorToReturn = err
}

// Calls returns the recorded method calls
func (f *FakeSnippetStore) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]string(nil), f.calls...)
}

// Writes counts create and update calls
func (f *FakeSnippetStore) Writes() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	n := 0
	for _, c := range f.calls {
		if len(c) >= 6 && (c[:6] == "Create" || c[:6] == "Update") {
			n++
		}
	}
	return n
}

// Snippets returns a copy of the snippets stored for siteID
func (f *FakeSnippetStore) Snippets(siteID string) []netlify.Snippet {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]netlify.Snippet(nil), f.snippets[siteID]...)
}

func (f *FakeSnippetStore) ListSnippets(_ context.Context, siteID string) ([]netlify.Snippet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, fmt.Sprintf("ListSnippets(%s)", siteID))
	if f.errorOn == "ListSnippets" {
		return nil, f.errorToReturn
	}
	return append([]netlify.Snippet(nil), f.snippets[siteID]...), nil
}

func (f *FakeSnippetStore) CreateSnippet(_ context.Context, siteID string, s netlify.Snippet) (*netlify.Snippet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, fmt.Sprintf("CreateSnippet(%s,%s)", siteID, s.Title))
	if f.errorOn == "CreateSnippet" {
		return nil, f.errorToReturn
	}
	s.ID = f.nextID
	f.nextID++
	f.snippets[siteID] = append(f.snippets[siteID], s)
	return &s, nil
}

func (f *FakeSnippetStore) UpdateSnippet(_ context.Context, siteID string, id int, s netlify.Snippet) (*netlify.Snippet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, fmt.Sprintf("UpdateSnippet(%s,%d)", siteID, id))
	if f.errorOn == "UpdateSnippet" {
		return nil, f.errorToReturn
	}
	for i := range f.snippets[siteID] {
		if f.snippets[siteID][i].ID == id {
			s.ID = id
			f.snippets[siteID][i] = s
			return &s, nil
		}
	}
	return nil, fmt.Errorf("snippet %d not found", id)
}
