package errors

import (
	"strings"
	"testing"
)

func TestStandardErrorErrorFormatsAllFields(t *testing.T) {
	err := NewStandardError(CategoryMutation, "SOME_CODE", "something went wrong", map[string]interface{}{"x": 1})

	msg := err.Error()

	if !strings.Contains(msg, "MUTATION") || !strings.Contains(msg, "SOME_CODE") || !strings.Contains(msg, "something went wrong") {
		t.Fatalf("Error() = %q, missing expected fields", msg)
	}
}

func TestNewStandardErrorCapturesCaller(t *testing.T) {
	err := NewStandardError(CategorySystem, "X", "y", nil)

	if err.Caller == "" || err.Caller == "unknown" {
		t.Fatalf("Caller = %q, want a resolved function name", err.Caller)
	}

	if !strings.Contains(err.Caller, "TestNewStandardErrorCapturesCaller") {
		t.Fatalf("Caller = %q, want it to name the calling test function", err.Caller)
	}
}

func TestInvalidLengthReportsMax(t *testing.T) {
	err := InvalidLength(0)

	if err.Category != CategoryMutation || err.Code != "INVALID_LENGTH" {
		t.Fatalf("InvalidLength() = %+v, unexpected category/code", err)
	}

	if err.Context["max"] != uint64(0) {
		t.Fatalf("InvalidLength() context[max] = %v, want 0", err.Context["max"])
	}
}

func TestUnknownWidthReportsWidth(t *testing.T) {
	err := UnknownWidth(3)

	if err.Category != CategoryMutation || err.Code != "UNKNOWN_WIDTH" {
		t.Fatalf("UnknownWidth() = %+v, unexpected category/code", err)
	}
}

func TestIncompatibleSchemaReportsVersionAndConstraint(t *testing.T) {
	err := IncompatibleSchema("2.0.0", ">=1.0.0, <2.0.0")

	if err.Category != CategoryConfig || err.Code != "INCOMPATIBLE_SCHEMA" {
		t.Fatalf("IncompatibleSchema() = %+v, unexpected category/code", err)
	}

	if err.Context["version"] != "2.0.0" {
		t.Fatalf("IncompatibleSchema() context[version] = %v, want 2.0.0", err.Context["version"])
	}
}

func TestPrecondViolatedReportsOperation(t *testing.T) {
	err := PrecondViolated("overwrite", 10, 5)

	if err.Category != CategoryBounds || err.Code != "PRECOND_VIOLATED" {
		t.Fatalf("PrecondViolated() = %+v, unexpected category/code", err)
	}
}
