// Package resilience provides a generic retry primitive with exponential
// backoff. The langflow client drives it with its own error classification
// to decide which upstream failures are worth retrying.
package resilience
