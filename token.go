package skillpack

import "context"

// TokenCounter counts tokens in text for a specific model. Used when chunk
// budgets are measured in tokens.
type TokenCounter interface {
	CountTokens(ctx context.Context, text string) (int, error)
}
