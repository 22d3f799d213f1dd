package pipeline

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/sells-group/sponsor-gap-api/pkg/anthropic"
	"github.com/sells-group/sponsor-gap-api/pkg/perplexity"
)

// --- Perplexity mock (research model) ---

type mockPerplexityClient struct {
	mock.Mock
}

func (m *mockPerplexityClient) ChatCompletion(ctx context.Context, req perplexity.ChatCompletionRequest) (*perplexity.ChatCompletionResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*perplexity.ChatCompletionResponse), args.Error(1)
}

// researchResponse builds a single-choice completion with the given content.
func researchResponse(content string) *perplexity.ChatCompletionResponse {
	return &perplexity.ChatCompletionResponse{
		ID: "cmpl-test",
		Choices: []perplexity.Choice{
			{Index: 0, Message: perplexity.Message{Role: "assistant", Content: content}},
		},
	}
}

// --- Anthropic mock (analysis model) ---

type mockAnthropicClient struct {
	mock.Mock
}

func (m *mockAnthropicClient) CreateMessage(ctx context.Context, req anthropic.MessageRequest) (*anthropic.MessageResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*anthropic.MessageResponse), args.Error(1)
}

// analysisResponse builds a single-text-block message with the given content.
func analysisResponse(content string) *anthropic.MessageResponse {
	return &anthropic.MessageResponse{
		ID:      "msg-test",
		Content: []anthropic.ContentBlock{{Type: "text", Text: content}},
	}
}
