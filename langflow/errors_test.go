package langflow

import (
	"errors"
	"fmt"
	"testing"
)

func TestClassifyStatusCode(t *testing.T) {
	tests := []struct {
		code      int
		wantNil   bool
		retryable bool
	}{
		{200, true, false},
		{204, true, false},
		{301, true, false},
		{304, true, false},
		{400, false, false},
		{404, false, false},
		{422, false, false},
		{499, false, false},
		{500, false, true},
		{503, false, true},
		{599, false, true},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("HTTP_%d", tt.code), func(t *testing.T) {
			err := ClassifyStatusCode(tt.code, []byte("body"))
			if tt.wantNil {
				if err != nil {
					t.Errorf("expected nil for %d, got %v", tt.code, err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error for %d", tt.code)
			}
			if err.Retryable != tt.retryable {
				t.Errorf("status %d: expected retryable=%v, got %v", tt.code, tt.retryable, err.Retryable)
			}
			if err.StatusCode != tt.code {
				t.Errorf("expected status %d in error, got %d", tt.code, err.StatusCode)
			}
		})
	}
}

func TestIsRetryable(t *testing.T) {
	if !IsRetryable(NewTimeoutError(errors.New("deadline"))) {
		t.Error("timeout must be retryable")
	}
	if !IsRetryable(NewConnectionError(errors.New("refused"))) {
		t.Error("connection failure must be retryable")
	}
	if IsRetryable(ClassifyStatusCode(400, nil)) {
		t.Error("4xx must not be retryable")
	}
	if IsRetryable(errors.New("plain")) {
		t.Error("plain errors are not retryable")
	}
}

func TestIsTimeout_IsConnection(t *testing.T) {
	timeout := NewTimeoutError(errors.New("deadline"))
	conn := NewConnectionError(errors.New("refused"))

	if !IsTimeout(timeout) || IsTimeout(conn) {
		t.Error("IsTimeout misclassified")
	}
	if !IsConnection(conn) || IsConnection(timeout) {
		t.Error("IsConnection misclassified")
	}
}

func TestServiceError_WrapsCause(t *testing.T) {
	cause := NewConnectionError(errors.New("refused"))
	err := NewServiceError(cause, "request failed after %d attempts: %v", 4, cause)

	if !IsServiceError(err) {
		t.Error("expected IsServiceError true")
	}
	var attemptErr *Error
	if !errors.As(err, &attemptErr) {
		t.Error("expected to unwrap to the attempt error")
	}
	if attemptErr.Code != ErrCodeConnection {
		t.Errorf("expected connection code, got %v", attemptErr.Code)
	}
}

func TestErrorCode_String(t *testing.T) {
	if ErrCodeTimeout.String() != "timeout" {
		t.Errorf("got %s", ErrCodeTimeout)
	}
	if ErrCodeConnection.String() != "connection" {
		t.Errorf("got %s", ErrCodeConnection)
	}
	if ErrCodeStatus.String() != "status" {
		t.Errorf("got %s", ErrCodeStatus)
	}
}
