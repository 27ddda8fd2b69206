// Package testutils holds shared testing support: mock implementations of
// the library's interfaces under mocks, and reusable test data builders
// under fixtures.
package testutils
