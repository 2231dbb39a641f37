package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestComponent(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = prev })

	logger := Component("contactform")
	logger.Info().Ctx(WithFormID(context.Background(), "abc")).Msg("submitted")

	var logEntry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("failed to parse log: %v", err)
	}

	if cmp := logEntry["cmp"]; cmp != "contactform" {
		t.Errorf("Component() cmp = %q, want %q", cmp, "contactform")
	}

	if id := logEntry["form_id"]; id != "abc" {
		t.Errorf("Component() form_id = %q, want %q", id, "abc")
	}

	if msg := logEntry["message"]; msg != "submitted" {
		t.Errorf("Component() message = %q, want %q", msg, "submitted")
	}
}
