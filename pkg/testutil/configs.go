package testutil

import (
	"context"
	"fmt"
	"sync"

	"github.com/superflow-dev/superflow-extension/pkg/netlify"
)

// FakeConfigStore holds extension configuration documents in memory
type FakeConfigStore struct {
	mu    sync.Mutex
	sites map[string]map[string]interface{} // account/site -> config
	teams map[string]map[string]interface{} // account -> config
	calls []string

	errorOn       string
	errorToReturn error
}

// NewFakeConfigStore returns an empty store
func NewFakeConfigStore() *FakeConfigStore {
	return &FakeConfigStore{
		sites: make(map[string]map[string]interface{}),
		teams: make(map[string]map[string]interface{}),
	}
}

func siteKey(accountID, siteID string) string {
	return accountID + "/" + siteID
}

// SetError makes the named method fail with err
func (f *FakeConfigStore) SetError(method string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.errorOn = method
	f.errorToReturn = err
}

// Calls returns the recorded method names
func (f *FakeConfigStore) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]string(nil), f.calls...)
}

// SeedSite stores a site document
func (f *FakeConfigStore) SeedSite(accountID, siteID string, config map[string]interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.sites[siteKey(accountID, siteID)] = copyMap(config)
}

// SeedTeam stores a team document
func (f *FakeConfigStore) SeedTeam(accountID string, config map[string]interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.teams[accountID] = copyMap(config)
}

func (f *FakeConfigStore) record(method string) error {
	f.calls = append(f.calls, method)
	if f.errorOn == method {
		return f.errorToReturn
	}
	return nil
}

func (f *FakeConfigStore) GetSiteConfiguration(_ context.Context, accountID, siteID string) (*netlify.Configuration, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.record("GetSiteConfiguration"); err != nil {
		return nil, err
	}
	cfg, ok := f.sites[siteKey(accountID, siteID)]
	if !ok {
		return nil, nil
	}
	return &netlify.Configuration{Config: copyMap(cfg)}, nil
}

func (f *FakeConfigStore) CreateSiteConfiguration(_ context.Context, accountID, siteID string, config map[string]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.record("CreateSiteConfiguration"); err != nil {
		return err
	}
	key := siteKey(accountID, siteID)
	if _, ok := f.sites[key]; ok {
		return fmt.Errorf("configuration for %s already exists", key)
	}
	f.sites[key] = copyMap(config)
	return nil
}

func (f *FakeConfigStore) UpdateSiteConfiguration(_ context.Context, accountID, siteID string, config map[string]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.record("UpdateSiteConfiguration"); err != nil {
		return err
	}
	f.sites[siteKey(accountID, siteID)] = copyMap(config)
	return nil
}

func (f *FakeConfigStore) GetTeamConfiguration(_ context.Context, accountID string) (*netlify.Configuration, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.record("GetTeamConfiguration"); err != nil {
		return nil, err
	}
	cfg, ok := f.teams[accountID]
	if !ok {
		return nil, nil
	}
	return &netlify.Configuration{Config: copyMap(cfg)}, nil
}

func copyMap(in map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func (f *FakeConfigStore) CreateTeamConfiguration(_ context.Context, accountID string, config map[string]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.record("CreateTeamConfiguration"); err != nil {
		return err
	}
	if _, ok := f.teams[accountID]; ok {
		return fmt.Errorf("team configuration for %s already exists", accountID)
	}
	f.teams[accountID] = copyMap(config)
	return nil
}

func (f *FakeConfigStore) UpdateTeamConfiguration(_ context.Context, accountID string, config map[string]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.record("UpdateTeamConfiguration"); err != nil {
		return err
	}
	f.teams[accountID] = copyMap(config)
	return nil
}
