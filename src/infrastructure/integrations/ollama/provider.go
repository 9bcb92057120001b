package ollama

import (
	"context"

	"github.com/tmc/langchaingo/textsplitter"

	"claimsight/src/log"
)

// Provider adapts the Ollama client to the reasoning, embedding and text
// splitting interfaces used by the core services.
type Provider struct {
	client    *Client
	modelName string
}

func NewProvider(client *Client, modelName string) *Provider {
	return &Provider{
		client:    client,
		modelName: modelName,
	}
}

func (p *Provider) TextSplit(ctx context.Context, text string, chunkSize, chunkOverlap int) ([]string, error) {
	splitter := textsplitter.NewRecursiveCharacter(
		textsplitter.WithChunkSize(chunkSize),
		textsplitter.WithChunkOverlap(chunkOverlap),
		textsplitter.WithLenFunc(
			func(s string) int {
				i, err := p.client.CountTokens(ctx, p.modelName, s)
				if err != nil {
					log.Error(err, "failed to count tokens")
					return -1
				}
				return i
			},
		),
	)

	return splitter.SplitText(text)
}

func (p *Provider) Reasoning(ctx context.Context, system string, prompt string) (string, error) {
	return p.client.Generate(ctx, p.modelName, system, prompt, map[string]interface{}{
		"temperature": 0.7,
		"top_p":       0.9,
	})
}

func (p *Provider) GetEmbedding(ctx context.Context, model string, text string) ([]float32, error) {
	return p.client.GetEmbedding(ctx, model, text)
}

func (p *Provider) Models(ctx context.Context) ([]string, error) {
	return p.client.Models(ctx)
}

func (p *Provider) TokenLength(ctx context.Context, text string) (int, error) {
	return p.client.CountTokens(ctx, p.modelName, text)
}
