package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/authmaster/internal/client/llm"
)

// Texts shown instead of a model answer.
const (
	ExplainFallback = "Unable to fetch explanation. Please ensure your API_KEY is valid."
	ExplainEmpty    = "No explanation available."
)

const explainSystemPrompt = "You are a senior engineer teaching authentication to junior developers."

// Explainer produces a short explanation of an authentication topic.
// It never fails: problems are reported through the returned text.
type Explainer interface {
	Explain(ctx context.Context, topic string) string
}

type explainService struct {
	model llm.ChatModel
}

// NewExplainService wraps model. A nil model always yields ExplainFallback.
func NewExplainService(model llm.ChatModel) Explainer {
	return &explainService{model: model}
}

func (s *explainService) Explain(ctx context.Context, topic string) string {
	if s.model == nil {
		return ExplainFallback
	}

	prompt := fmt.Sprintf("Explain the concept of '%s' in the context of full-stack authentication "+
		"(password hashing, sessions, tokens and protected routes). Keep it concise, professional, "+
		"and educational for a junior developer. Use markdown.", topic)

	text, err := s.model.Ask(ctx, explainSystemPrompt, prompt)
	if err != nil {
		return ExplainFallback
	}
	if strings.TrimSpace(text) == "" {
		return ExplainEmpty
	}
	return text
}
