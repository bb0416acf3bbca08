// Package util provides small generic helpers shared across the gateway:
// string truncation for log previews, secret masking, and zero-value
// coalescing.
package util
