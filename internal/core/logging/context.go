package logging

import "context"

type contextKey string

const formIDKey contextKey = "form_id"

// WithFormID adds the ID of a mounted form to the context.
func WithFormID(ctx context.Context, formID string) context.Context {
	return context.WithValue(ctx, formIDKey, formID)
}

// GetFormID retrieves the form ID from the context.
// Returns empty string if not present.
func GetFormID(ctx context.Context) string {
	if id, ok := ctx.Value(formIDKey).(string); ok {
		return id
	}
	return ""
}
