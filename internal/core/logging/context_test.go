package logging

import (
	"context"
	"testing"
)

func TestWithFormID(t *testing.T) {
	ctx := WithFormID(context.Background(), "form-123")

	if got := GetFormID(ctx); got != "form-123" {
		t.Errorf("GetFormID() = %q, want %q", got, "form-123")
	}
}

func TestGetFormID_NotPresent(t *testing.T) {
	if got := GetFormID(context.Background()); got != "" {
		t.Errorf("GetFormID() = %q, want empty string", got)
	}
}
