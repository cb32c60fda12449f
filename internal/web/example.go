package web

import (
	"context"
	"log/slog"
	"os"
	"strings"
)

const examplePlaceholder = "Example transcript (conversation_example.txt) not found. " +
	"Paste a transcript here."

// LoadExampleTranscript reads the seed transcript used to pre-populate the
// input pane. A missing or empty file is tolerated and replaced with a
// placeholder.
func LoadExampleTranscript(
	ctx context.Context,
	path string,
	log *slog.Logger,
) string {
	data, err := os.ReadFile(path)
	if err != nil {
		log.WarnContext(ctx, "Failed to read example transcript so placeholder will be used",
			"error", err,
			"path", path)

		return examplePlaceholder
	}

	text := strings.TrimRight(string(data), "\n")
	if strings.TrimSpace(text) == "" {
		log.WarnContext(ctx, "Example transcript is empty so placeholder will be used",
			"path", path)

		return examplePlaceholder
	}

	return text
}
