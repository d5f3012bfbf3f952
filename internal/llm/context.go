package llm

import "context"

type ctxKey struct{}

var purposeKey ctxKey

// WithPurpose labels the context with what the request is for ("coach" is
// the only purpose the app sets today). The label ends up in the session
// event log next to latency and token counts.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom reads the purpose label back, or "unknown" for an unlabeled
// context.
func PurposeFrom(ctx context.Context) string {
	if p, ok := ctx.Value(purposeKey).(string); ok {
		return p
	}
	return "unknown"
}
