// Package llm abstracts the chat model behind the "explain this topic" panel.
package llm

import "context"

// ChatModel is a minimal abstraction for chat-based LLMs.
type ChatModel interface {
	Ask(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
