package groq

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/sashabaranov/go-openai"
)

const defaultBaseURL = "https://api.groq.com/openai/v1"

// FallbackSummary is returned when the provider answers the request but the
// completion carries no usable content. The caller still gets text to edit.
const FallbackSummary = "Could not generate summary."

// Service summarizes transcripts through Groq's OpenAI-compatible
// chat-completion API.
type Service struct {
	client *openai.Client
	model  string
}

// NewService creates a Groq summarizer. baseURL may be empty to use the
// public Groq endpoint.
func NewService(apiKey, baseURL, model string) *Service {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	clientConfig := openai.DefaultConfig(apiKey)
	clientConfig.BaseURL = baseURL
	clientConfig.HTTPClient = newHTTPClient()

	return &Service{
		client: openai.NewClientWithConfig(clientConfig),
		model:  model,
	}
}

// SummarizeTranscript sends a single chat completion request. The effective
// prompt is the instruction followed by a blank line and the transcript; with
// an empty instruction the transcript goes alone. Exactly one attempt is
// made, no retry.
func (s *Service) SummarizeTranscript(ctx context.Context, transcript, instruction string) (string, error) {
	prompt := transcript
	if instruction != "" {
		prompt = instruction + "\n\n" + transcript
	}

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("groq chat completion: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return FallbackSummary, nil
	}
	return resp.Choices[0].Message.Content, nil
}

func newHTTPClient() *http.Client {
	return &http.Client{
		Timeout: 120 * time.Second,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   10 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:        10,
			IdleConnTimeout:     90 * time.Second,
			TLSHandshakeTimeout: 10 * time.Second,
		},
	}
}
