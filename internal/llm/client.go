package llm

import "context"

// Client is a generative-text completion API: one prompt in, the
// model's text out.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
