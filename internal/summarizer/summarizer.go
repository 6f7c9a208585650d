package summarizer

import (
	"context"
)

// Input describes the payload for a summary request.
type Input struct {
	// Text contains the extracted plain text of the article.
	Text string
	// SourceURL is optional metadata that helps the model reference the origin.
	SourceURL string
}

// Summary is the result of the two-stage pipeline.
type Summary struct {
	// BulletPoints is the stage-1 extraction, newline-delimited, each
	// bullet prefixed with "-".
	BulletPoints string
	// Paragraph is the stage-2 condensation of the bullet points.
	Paragraph string
}

// Summarizer produces a bullet-point extraction and a prose summary for an
// article.
type Summarizer interface {
	SummarizeArticle(ctx context.Context, input Input) (*Summary, error)
}
