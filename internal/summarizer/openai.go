package summarizer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/responses"
)

const (
	baseMaxOutputTokens  int64 = 1024
	limitMaxOutputTokens int64 = 4096

	extractInstructions = `You are an analytical assistant. Read the article below and extract the key ideas as concise bullet points.
Be objective, avoid redundancy, and start each bullet with '-'.`

	condenseInstructions = `You are a summarization expert. Using the bullet points below, write a concise, coherent summary in one paragraph.
Maintain the original meaning and avoid introducing new information.`
)

// OpenAISummarizer runs the pipeline over OpenAI's Responses API.
type OpenAISummarizer struct {
	client openai.Client

	// complete performs one model call. Swappable in tests.
	complete func(ctx context.Context, instructions string, input string) (string, error)
}

// NewOpenAISummarizer builds a new summarizer instance.
func NewOpenAISummarizer(apiKey string) (*OpenAISummarizer, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("API key is empty")
	}

	s := &OpenAISummarizer{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
	}
	s.complete = s.completeOnce

	return s, nil
}

// SummarizeArticle runs the two stages strictly in sequence: stage 2's
// input is stage 1's output. The article text is forwarded untruncated.
func (s *OpenAISummarizer) SummarizeArticle(
	ctx context.Context,
	input Input,
) (*Summary, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return nil, errors.New("input is empty")
	}

	extractPromptBuilder := strings.Builder{}
	if sourceURL := strings.TrimSpace(input.SourceURL); sourceURL != "" {
		extractPromptBuilder.WriteString("SOURCE:\n")
		extractPromptBuilder.WriteString(sourceURL)
		extractPromptBuilder.WriteString("\n")
	}
	extractPromptBuilder.WriteString("ARTICLE:\n")
	extractPromptBuilder.WriteString(text)

	bulletPoints, err := s.complete(ctx, extractInstructions, extractPromptBuilder.String())
	if err != nil {
		return nil, fmt.Errorf("extract bullet points: %w", err)
	}

	condensePrompt := "BULLET POINTS:\n" + bulletPoints

	paragraph, err := s.complete(ctx, condenseInstructions, condensePrompt)
	if err != nil {
		return nil, fmt.Errorf("condense bullet points: %w", err)
	}

	return &Summary{
		BulletPoints: bulletPoints,
		Paragraph:    paragraph,
	}, nil
}

func (s *OpenAISummarizer) completeOnce(
	ctx context.Context,
	instructions string,
	input string,
) (string, error) {
	maxOutputTokens := baseMaxOutputTokens
	for {
		resp, err := s.client.Responses.New(ctx, responses.ResponseNewParams{
			Model:           openai.ChatModelGPT5Mini2025_08_07,
			ServiceTier:     responses.ResponseNewParamsServiceTierFlex,
			MaxOutputTokens: openai.Int(maxOutputTokens),
			Reasoning: responses.ReasoningParam{
				Effort: openai.ReasoningEffortLow,
			},
			Instructions: openai.String(instructions),
			Input: responses.ResponseNewParamsInputUnion{
				OfString: openai.String(input),
			},
		})
		if err != nil {
			return "", fmt.Errorf("do request: %w", err)
		}

		if resp.Status == "incomplete" {
			if resp.IncompleteDetails.Reason == "max_output_tokens" && maxOutputTokens < limitMaxOutputTokens {
				maxOutputTokens *= 2
				if maxOutputTokens > limitMaxOutputTokens {
					maxOutputTokens = limitMaxOutputTokens
				}
				continue
			}
			return "", fmt.Errorf(
				"response is incomplete (reason = %s, maxOutputTokens = %d)",
				resp.IncompleteDetails.Reason,
				maxOutputTokens,
			)
		}

		output := strings.TrimSpace(resp.OutputText())
		if output == "" {
			return "", fmt.Errorf("output text is missing (status = %s)", resp.Status)
		}
		return output, nil
	}
}
