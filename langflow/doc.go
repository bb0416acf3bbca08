// Package langflow is a resilient client for the Langflow REST API.
//
// A Client owns one lazily-created, pooled HTTP connection to the upstream
// instance and is scoped to a single logical session: create it with New,
// perform operations, and release the pool with Close (safe on every path).
//
//	client, err := langflow.New(langflow.Config{BaseURL: "http://localhost:7860"})
//	if err != nil { ... }
//	defer client.Close()
//
//	flows, err := client.GetFlows(ctx)
//
// Every request goes through a retry primitive with pure exponential backoff:
// timeouts, connection failures, and 5xx responses are retried; 4xx responses
// fail immediately. All upstream failures surface as *ServiceError.
//
// The two operations have deliberately different failure contracts: GetFlows
// is fail-fast and returns the ServiceError to the caller, while ExecuteFlow
// folds any failure into the ExecutionResult it returns.
package langflow
