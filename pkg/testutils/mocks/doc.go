// Package mocks provides test doubles for the library's interfaces: a
// scripted completion executor with call tracking, a catalog data source
// with failure injection, and schema validators for healing tests.
package mocks
