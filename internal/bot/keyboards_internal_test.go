package bot

import (
	"strings"
	"testing"
)

func TestSplitMessageShortText(t *testing.T) {
	chunks := splitMessage("short text")

	if len(chunks) != 1 || chunks[0] != "short text" {
		t.Errorf("Expected one unchanged chunk, got %v", chunks)
	}
}

func TestSplitMessageLongText(t *testing.T) {
	line := strings.Repeat("a", 100)
	text := strings.TrimSpace(strings.Repeat(line+"\n", 100))

	chunks := splitMessage(text)

	if len(chunks) < 2 {
		t.Fatalf("Expected multiple chunks, got %d", len(chunks))
	}

	for i, chunk := range chunks {
		if len(chunk) > telegramMessageMaxLength {
			t.Errorf("Chunk %d exceeds limit: %d bytes", i, len(chunk))
		}
	}

	if strings.Join(chunks, "\n") != text {
		t.Error("Expected chunks to reassemble into the original text")
	}
}

func TestSplitMessageNoNewlines(t *testing.T) {
	text := strings.Repeat("a", telegramMessageMaxLength+10)

	chunks := splitMessage(text)

	if len(chunks) != 2 {
		t.Fatalf("Expected 2 chunks, got %d", len(chunks))
	}

	if len(chunks[0]) != telegramMessageMaxLength {
		t.Errorf("Expected first chunk at the limit, got %d bytes", len(chunks[0]))
	}
}
