package langflow

import "encoding/json"

// Flow is a remotely stored workflow definition as returned by the
// flow-listing endpoint. It is a read-only snapshot: fetched per request,
// never cached, discarded once the response is built.
type Flow struct {
	ID                string          `json:"id" validate:"required"`
	Name              string          `json:"name" validate:"required"`
	FolderID          string          `json:"folder_id" validate:"required"`
	IsComponent       bool            `json:"is_component"`
	EndpointName      string          `json:"endpoint_name,omitempty"`
	// Description must be present upstream; a pointer distinguishes a
	// missing field from an empty string, which required tags on plain
	// strings cannot.
	Description *string `json:"description" validate:"required"`
	Data              json.RawMessage `json:"data,omitempty"`
	AccessType        string          `json:"access_type" validate:"required"`
	Tags              []string        `json:"tags"`
	MCPEnabled        bool            `json:"mcp_enabled"`
	ActionName        string          `json:"action_name,omitempty"`
	ActionDescription string          `json:"action_description,omitempty"`
}

// ExecutionRequest is the payload for running a flow. Build it with
// NewExecutionRequest and treat it as immutable afterwards.
type ExecutionRequest struct {
	InputValue string         `json:"input_value"`
	OutputType string         `json:"output_type"`
	InputType  string         `json:"input_type"`
	Tweaks     map[string]any `json:"tweaks"`
}

// NewExecutionRequest builds an ExecutionRequest with the default chat
// input/output types. A nil tweaks map becomes an empty one so the wire
// payload always carries a tweaks object.
func NewExecutionRequest(inputValue string, tweaks map[string]any) ExecutionRequest {
	if tweaks == nil {
		tweaks = map[string]any{}
	}
	return ExecutionRequest{
		InputValue: inputValue,
		OutputType: "chat",
		InputType:  "chat",
		Tweaks:     tweaks,
	}
}

// ExecutionResult reports the outcome of a flow execution. Exactly one of
// Result and Error is meaningful, gated by Success.
type ExecutionResult struct {
	Success bool            `json:"success"`
	Result  json.RawMessage `json:"result"`
	Error   string          `json:"error,omitempty"`
}
