package validation

import (
	"strings"
	"testing"
)

type record struct {
	ID   string   `json:"id" validate:"required"`
	Name string   `json:"name" validate:"required"`
	Tags []string `json:"tags"`
}

func TestValidate_OK(t *testing.T) {
	err := Validate(record{ID: "abc", Name: "one"})
	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}
}

func TestValidate_MissingFields(t *testing.T) {
	err := Validate(record{})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !IsValidationError(err) {
		t.Errorf("expected *Error, got %T", err)
	}
	msg := err.Error()
	if !strings.Contains(msg, "id is required") {
		t.Errorf("expected id failure in message, got %q", msg)
	}
	if !strings.Contains(msg, "name is required") {
		t.Errorf("expected name failure in message, got %q", msg)
	}
}

func TestValidate_UsesJSONTagNames(t *testing.T) {
	type withTag struct {
		FolderID string `json:"folder_id" validate:"required"`
	}
	err := Validate(withTag{})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "folder_id") {
		t.Errorf("expected json tag name in message, got %q", err.Error())
	}
}

func TestIsValidationError_OtherError(t *testing.T) {
	if IsValidationError(errOther{}) {
		t.Error("plain error should not be a validation error")
	}
}

type errOther struct{}

func (errOther) Error() string { return "other" }
