// Package sanitizer provides masking helpers for writing personally
// identifiable data to logs.
//
// All functions are pure and deterministic: the same input always produces
// the same masked output, and no function performs I/O. Masked values keep
// just enough structure (domain, last digits) for operators to correlate log
// lines without exposing the underlying value.
package sanitizer
