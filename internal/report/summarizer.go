package report

import "context"

// Summarizer produces a prose narrative for an assembled profile. The
// pipeline treats it as optional: a nil Summarizer skips the narrative, and a
// failing one is recorded on the profile without failing the run.
type Summarizer interface {
	Summarize(ctx context.Context, prompt, corpus string) (string, error)
}
