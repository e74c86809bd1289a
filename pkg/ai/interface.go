package ai

import (
	"context"
)

// SummarizerService is the interface for transcript summarization.
// Implement this interface to add new AI providers (Groq, OpenAI, etc.)
type SummarizerService interface {
	// SummarizeTranscript generates a summary of the transcript, steered by
	// the caller's instruction. Both inputs are forwarded exactly as
	// received; on success some text is always returned, even when the
	// provider produced no usable content.
	SummarizeTranscript(ctx context.Context, transcript, instruction string) (string, error)
}

// ProviderType represents the AI provider type
type ProviderType string

const (
	ProviderGroq ProviderType = "groq"
	ProviderAuto ProviderType = "auto"
)
