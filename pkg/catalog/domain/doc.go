// Package domain defines the model metadata records the catalog serves.
//
// ModelRecord is immutable once loaded: a refresh replaces the entire
// snapshot rather than mutating records, which is what makes concurrent
// reads safe without locking. Capability tags, pricing, and the coarse
// performance tier are derived from the upstream catalog at load time by a
// DataSource implementation.
package domain
