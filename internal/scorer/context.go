package scorer

import "context"

type interactionIDKey struct{}

// WithInteractionID tags a context with the interaction being graded so
// the logging decorator can link the scorer event to the interaction log.
func WithInteractionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, interactionIDKey{}, id)
}

// InteractionIDFrom extracts the interaction id from a context, or "".
func InteractionIDFrom(ctx context.Context) string {
	if id, ok := ctx.Value(interactionIDKey{}).(string); ok {
		return id
	}
	return ""
}
