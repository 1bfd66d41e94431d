package logger

import "context"

type contextKey string

const logFieldsKey contextKey = "log_fields"

// LogFields contains structured fields automatically added to all logs within
// a context. Business identifiers (user_id, chatroom_id, message_id) flow
// through context enrichment so individual log statements don't repeat them.
type LogFields struct {
	UserID     *int64  // authenticated user
	ChatroomID *int64  // chatroom being operated on
	MessageID  *int64  // chat message ID
	TaskID     *string // Redis stream entry ID
	Component  string  // component name, e.g. "backend.worker"
}

// WithLogFields enriches context with structured log fields.
// Multiple calls merge fields, with newer non-nil/non-empty values taking
// precedence. Context timeouts and cancellation are preserved.
func WithLogFields(ctx context.Context, fields LogFields) context.Context {
	existing := GetLogFields(ctx)
	merged := mergeFields(existing, fields)
	return context.WithValue(ctx, logFieldsKey, merged)
}

// GetLogFields retrieves log fields from context.
// Returns empty LogFields if none are set.
func GetLogFields(ctx context.Context) LogFields {
	if fields, ok := ctx.Value(logFieldsKey).(LogFields); ok {
		return fields
	}
	return LogFields{}
}

func mergeFields(existing, next LogFields) LogFields {
	result := existing

	if next.UserID != nil {
		result.UserID = next.UserID
	}
	if next.ChatroomID != nil {
		result.ChatroomID = next.ChatroomID
	}
	if next.MessageID != nil {
		result.MessageID = next.MessageID
	}
	if next.TaskID != nil {
		result.TaskID = next.TaskID
	}
	if next.Component != "" {
		result.Component = next.Component
	}

	return result
}

// Ptr is a helper to create a pointer from a value, for setting LogFields
// inline: logger.WithLogFields(ctx, logger.LogFields{MessageID: logger.Ptr(id)})
func Ptr[T any](v T) *T {
	return &v
}

// Truncate truncates a string to maxLen characters, appending "..." if
// truncated. Useful for logging prompts and generated responses.
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
