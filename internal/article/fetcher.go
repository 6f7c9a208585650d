package article

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const (
	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/127.0.0.0 Safari/537.36"

	fetchTimeout = 15 * time.Second
)

// ErrNoContent means the page had no extractable paragraph content.
var ErrNoContent = errors.New("no extractable article content")

// Fetcher downloads an article page and extracts its plain text.
type Fetcher struct {
	client *http.Client
	log    *slog.Logger
}

func NewFetcher(log *slog.Logger) *Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: fetchTimeout},
		log:    log,
	}
}

// Fetch performs one GET and returns the newline-joined paragraph text of
// the page. Content is taken from the first <article> or <main> container
// when present, otherwise from the whole document.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return "", errors.New("article URL is empty")
	}

	if _, err := url.Parse(rawURL); err != nil {
		return "", fmt.Errorf("parse URL: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("do request: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			f.log.ErrorContext(ctx, "Failed to close response body",
				"error", closeErr,
				"articleURL", rawURL)
		}
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", fmt.Errorf("unexpected status %d (URL = %s)", resp.StatusCode, rawURL)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("parse HTML: %w", err)
	}

	text := extractParagraphText(doc)
	if text == "" {
		return "", ErrNoContent
	}

	return text, nil
}

func extractParagraphText(doc *goquery.Document) string {
	container := doc.Find("article").First()
	if container.Length() == 0 {
		container = doc.Find("main").First()
	}

	var paragraphs *goquery.Selection
	if container.Length() != 0 {
		paragraphs = container.Find("p")
	} else {
		paragraphs = doc.Find("p")
	}

	var lines []string
	paragraphs.Each(func(_ int, s *goquery.Selection) {
		lines = append(lines, s.Text())
	})

	return strings.TrimSpace(strings.Join(lines, "\n"))
}
