package article

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func serve(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
		if _, err := w.Write([]byte(body)); err != nil {
			t.Errorf("Failed to write response body: %v", err)
		}
	}))
	t.Cleanup(server.Close)

	return server
}

func TestFetchExtractsArticleParagraphs(t *testing.T) {
	server := serve(t, http.StatusOK, `<html><body>
		<p>Sidebar noise.</p>
		<article><p>A.</p><p>B.</p></article>
	</body></html>`)

	fetcher := NewFetcher(testLogger())

	text, err := fetcher.Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if text != "A.\nB." {
		t.Errorf("Expected %q, got %q", "A.\nB.", text)
	}
}

func TestFetchFallsBackToMainContainer(t *testing.T) {
	server := serve(t, http.StatusOK, `<html><body>
		<main><p>Main text.</p></main>
		<footer><p>Footer text.</p></footer>
	</body></html>`)

	fetcher := NewFetcher(testLogger())

	text, err := fetcher.Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if text != "Main text." {
		t.Errorf("Expected %q, got %q", "Main text.", text)
	}
}

func TestFetchFallsBackToWholeDocument(t *testing.T) {
	server := serve(t, http.StatusOK, `<html><body>
		<div><p>First.</p></div>
		<div><p>Second.</p></div>
	</body></html>`)

	fetcher := NewFetcher(testLogger())

	text, err := fetcher.Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if text != "First.\nSecond." {
		t.Errorf("Expected %q, got %q", "First.\nSecond.", text)
	}
}

func TestFetchNoParagraphs(t *testing.T) {
	server := serve(t, http.StatusOK, `<html><body><div>No paragraphs here.</div></body></html>`)

	fetcher := NewFetcher(testLogger())

	if _, err := fetcher.Fetch(context.Background(), server.URL); !errors.Is(err, ErrNoContent) {
		t.Errorf("Expected ErrNoContent, got %v", err)
	}
}

func TestFetchEmptyContainerDoesNotFallBack(t *testing.T) {
	server := serve(t, http.StatusOK, `<html><body>
		<article><div>No paragraphs inside.</div></article>
		<p>Outside text.</p>
	</body></html>`)

	fetcher := NewFetcher(testLogger())

	if _, err := fetcher.Fetch(context.Background(), server.URL); !errors.Is(err, ErrNoContent) {
		t.Errorf("Expected ErrNoContent, got %v", err)
	}
}

func TestFetchBadStatus(t *testing.T) {
	server := serve(t, http.StatusNotFound, "not found")

	fetcher := NewFetcher(testLogger())

	if _, err := fetcher.Fetch(context.Background(), server.URL); err == nil {
		t.Error("Expected error for non-2xx status")
	}
}

func TestFetchEmptyURL(t *testing.T) {
	fetcher := NewFetcher(testLogger())

	if _, err := fetcher.Fetch(context.Background(), "   "); err == nil {
		t.Error("Expected error for empty URL")
	}
}

func TestFetchSendsBrowserUserAgent(t *testing.T) {
	var gotUserAgent string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		if _, err := w.Write([]byte("<article><p>Text.</p></article>")); err != nil {
			t.Errorf("Failed to write response body: %v", err)
		}
	}))
	t.Cleanup(server.Close)

	fetcher := NewFetcher(testLogger())

	if _, err := fetcher.Fetch(context.Background(), server.URL); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if gotUserAgent != userAgent {
		t.Errorf("Expected user agent %q, got %q", userAgent, gotUserAgent)
	}
}
