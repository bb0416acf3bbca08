// Package gateway is the HTTP boundary of the service: a Gin server exposing
// the flow listing, execution, and connectivity-probe endpoints, translating
// client failures into transport status codes.
//
// Error translation is uniform across handlers: a langflow.ServiceError maps
// to 503 (upstream unavailable) and any other failure maps to 500, both with
// the original message preserved in the "detail" field.
package gateway
