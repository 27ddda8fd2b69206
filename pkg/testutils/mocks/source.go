// ABOUTME: Mock catalog data source serving fixed model records
// ABOUTME: Supports failure injection and fetch counting for refresh tests
package mocks

import (
	"context"
	"sync"

	catalogDomain "github.com/estiens/open-router-enhanced-sub001/pkg/catalog/domain"
)

// MockDataSource is a catalog DataSource backed by a fixed record slice.
type MockDataSource struct {
	mu      sync.Mutex
	records []catalogDomain.ModelRecord
	err     error
	fetches int
}

// NewMockDataSource creates a source serving the given records.
func NewMockDataSource(records ...catalogDomain.ModelRecord) *MockDataSource {
	return &MockDataSource{records: records}
}

// SetRecords replaces the records served by subsequent fetches.
func (s *MockDataSource) SetRecords(records ...catalogDomain.ModelRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = records
}

// SetError makes subsequent fetches fail with err. Pass nil to clear.
func (s *MockDataSource) SetError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

// FetchAll implements catalog/domain.DataSource.
func (s *MockDataSource) FetchAll(ctx context.Context) ([]catalogDomain.ModelRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fetches++
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.err != nil {
		return nil, s.err
	}
	out := make([]catalogDomain.ModelRecord, len(s.records))
	copy(out, s.records)
	return out, nil
}

// FetchCount returns how many times FetchAll ran.
func (s *MockDataSource) FetchCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fetches
}
