// Package validation adapts an external JSON Schema library to the domain
// Validator contract. This library deliberately does not implement JSON
// Schema itself; the adapter compiles domain schemas and flattens the
// library's cause tree into flat error messages for healing and reporting.
package validation
