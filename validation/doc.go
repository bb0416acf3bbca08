// Package validation wraps go-playground/validator for struct validation.
// The langflow client uses it to check upstream flow records per record,
// and the gateway uses it on inbound request bodies.
package validation
