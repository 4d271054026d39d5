package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestMetadataForKnownCodes(t *testing.T) {
	tests := map[Code]Metadata{
		CodeValidation:   {http.StatusBadRequest, false, "validation failed", true},
		CodeUnauthorized: {http.StatusUnauthorized, false, "authentication required", false},
		CodeForbidden:    {http.StatusForbidden, false, "access denied", false},
		CodeNotFound:     {http.StatusNotFound, false, "resource not found", true},
		CodeConflict:     {http.StatusConflict, false, "conflict detected", false},
		CodeIdempotency:  {http.StatusConflict, false, "idempotency key reused", true},
		CodeInternal:     {http.StatusInternalServerError, true, "internal server error", false},
		CodeDependency:   {http.StatusServiceUnavailable, true, "dependency unavailable", true},
	}

	for code, want := range tests {
		if got := MetadataFor(code); got != want {
			t.Fatalf("code %s: expected %+v got %+v", code, want, got)
		}
	}
}

func TestMetadataForUnknownCodeDefaultsToInternal(t *testing.T) {
	meta := MetadataFor("SOMETHING_UNKNOWN")
	if meta.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected internal status, got %d", meta.HTTPStatus)
	}
	if !meta.Retryable {
		t.Fatal("unknown codes should inherit the retryable internal entry")
	}
}

func TestNewCarriesCodeAndMessage(t *testing.T) {
	err := New(CodeValidation, "missing foo")
	if err.Code() != CodeValidation || err.Message() != "missing foo" {
		t.Fatalf("unexpected error %s / %q", err.Code(), err.Message())
	}
	if err.Details() != nil {
		t.Fatal("details should start nil")
	}
	if err.WithDetails(map[string]any{"field": "foo"}).Details() == nil {
		t.Fatal("WithDetails did not attach")
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stdErrors.New("boom")
	wrapped := Wrap(CodeConflict, cause, "saving order")
	if !stdErrors.Is(wrapped, cause) {
		t.Fatal("cause lost from chain")
	}
	if wrapped.Code() != CodeConflict {
		t.Fatalf("unexpected code %s", wrapped.Code())
	}

	// wrapping again keeps the innermost cause reachable
	outer := fmt.Errorf("handler: %w", wrapped)
	if got := As(outer); got == nil || got.Code() != CodeConflict {
		t.Fatal("As failed through a fmt wrap")
	}
}

func TestAsNilAndUntyped(t *testing.T) {
	if As(nil) != nil {
		t.Fatal("As(nil) should return nil")
	}
	if As(stdErrors.New("plain")) != nil {
		t.Fatal("As on an untyped error should return nil")
	}
}
