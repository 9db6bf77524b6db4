package prompt

import (
	"context"

	"tendersim/internal/render"
)

type contextKey string

const replyKey contextKey = "prompt_reply"

// WithReply attaches the user's prompt reply to the request context. The HTTP
// layer sets it from the inbound payload before invoking an operation that may
// prompt.
func WithReply(ctx context.Context, reply string) context.Context {
	return context.WithValue(ctx, replyKey, reply)
}

// ContextPrompter resolves prompts from the reply carried with the request.
// An empty reply means the user supplied nothing.
type ContextPrompter struct{}

func (ContextPrompter) Prompt(ctx context.Context, _ render.Node, _ string) (string, error) {
	reply, _ := ctx.Value(replyKey).(string)
	return reply, nil
}
