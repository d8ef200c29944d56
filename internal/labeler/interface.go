package labeler

import (
	"context"

	"github.com/telltaleatheist/ContentStudio/internal/chapters"
)

// Labeler is the text-generation collaborator that names transcript
// positions. It consumes the formatted chunk/segment listing and
// returns free-form proposals; all validation happens downstream in
// the position mapper.
type Labeler interface {
	// ProposeChapters asks the model for chapter candidates over a
	// "<id>. [<time>] <text>" listing.
	ProposeChapters(ctx context.Context, listing string) ([]chapters.Candidate, error)

	// TopicsFor produces one short topic per segment from the
	// concatenated member chunk texts. The returned slice is aligned
	// with the input segments; entries the model skipped are empty.
	TopicsFor(ctx context.Context, segments []chapters.Segment, chunks []chapters.Chunk) ([]string, error)
}

// Provider is a minimal completion backend. Implementations wrap one
// vendor SDK each.
type Provider interface {
	Name() string
	Complete(ctx context.Context, prompt string) (string, error)
}
