package summarizer

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func stubbedSummarizer(
	complete func(ctx context.Context, instructions string, input string) (string, error),
) *OpenAISummarizer {
	return &OpenAISummarizer{complete: complete}
}

func TestSummarizeArticleStagesAreSequential(t *testing.T) {
	var calls []string

	s := stubbedSummarizer(func(_ context.Context, instructions string, input string) (string, error) {
		calls = append(calls, instructions)

		switch instructions {
		case extractInstructions:
			if !strings.Contains(input, "ARTICLE:\nSome article text.") {
				t.Errorf("Expected article embedded in stage-1 input, got %q", input)
			}
			return "- X\n- Y", nil
		case condenseInstructions:
			if input != "BULLET POINTS:\n- X\n- Y" {
				t.Errorf("Expected stage-1 bullets embedded verbatim, got %q", input)
			}
			return "One paragraph about X and Y.", nil
		default:
			t.Fatalf("Unexpected instructions: %q", instructions)
			return "", nil
		}
	})

	summary, err := s.SummarizeArticle(context.Background(), Input{
		Text:      "Some article text.",
		SourceURL: "https://example.com/article",
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(calls) != 2 {
		t.Fatalf("Expected 2 stage calls, got %d", len(calls))
	}
	if calls[0] != extractInstructions || calls[1] != condenseInstructions {
		t.Errorf("Expected extraction then condensation, got %v", calls)
	}

	if summary.BulletPoints != "- X\n- Y" {
		t.Errorf("Unexpected bullet points: %q", summary.BulletPoints)
	}
	if summary.Paragraph != "One paragraph about X and Y." {
		t.Errorf("Unexpected paragraph: %q", summary.Paragraph)
	}
}

func TestSummarizeArticleSourceURLIsOptional(t *testing.T) {
	s := stubbedSummarizer(func(_ context.Context, instructions string, input string) (string, error) {
		if instructions == extractInstructions && strings.Contains(input, "SOURCE:") {
			t.Errorf("Expected no source section, got %q", input)
		}
		return "output", nil
	})

	if _, err := s.SummarizeArticle(context.Background(), Input{Text: "Text."}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
}

func TestSummarizeArticleEmptyInput(t *testing.T) {
	s := stubbedSummarizer(func(context.Context, string, string) (string, error) {
		t.Fatal("Expected no model call for empty input")
		return "", nil
	})

	if _, err := s.SummarizeArticle(context.Background(), Input{Text: "   "}); err == nil {
		t.Error("Expected error for empty input")
	}
}

func TestSummarizeArticleStageErrorPropagates(t *testing.T) {
	stageErr := errors.New("upstream is down")

	s := stubbedSummarizer(func(_ context.Context, instructions string, _ string) (string, error) {
		if instructions == condenseInstructions {
			return "", stageErr
		}
		return "- X", nil
	})

	if _, err := s.SummarizeArticle(context.Background(), Input{Text: "Text."}); !errors.Is(err, stageErr) {
		t.Errorf("Expected stage error to propagate, got %v", err)
	}
}

func TestNewOpenAISummarizerEmptyKey(t *testing.T) {
	if _, err := NewOpenAISummarizer("  "); err == nil {
		t.Error("Expected error for empty API key")
	}
}
