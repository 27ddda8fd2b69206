// Package fixtures provides shared test data builders.
package fixtures
