// Package report turns raw incident transcripts into Markdown post-mortem
// reports through a remote text-generation service.
package report

import "context"

// Generator produces a Markdown post-mortem report for a transcript.
// One invocation makes exactly one outbound request; results are never
// cached.
type Generator interface {
	Generate(ctx context.Context, transcript string) (string, error)
}
