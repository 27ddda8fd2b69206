// Package catalog maintains an in-memory snapshot of model metadata loaded
// from an external data source, typically the OpenRouter models endpoint.
//
// The snapshot is immutable per generation: Refresh builds a complete new
// map and publishes it with an atomic pointer swap, so concurrent readers
// never observe partial updates. Reads past the TTL trigger a reload; when
// the data source is unreachable the previous snapshot keeps serving and
// only a catalog with no data at all surfaces ErrCatalogUnavailable.
package catalog
