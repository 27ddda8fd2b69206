// Package fetchers contains DataSource implementations for loading model
// metadata from upstream catalogs.
package fetchers
