package labeler

import (
	"context"
	"fmt"
	"strings"

	"github.com/telltaleatheist/ContentStudio/internal/chapters"
)

const chapterPrompt = `You are labeling a time-coded transcript for video chapters.

Each line below is a numbered position: "<id>. [<time>] <text>".
Pick the positions where a new topic clearly begins and give each a short,
specific title (3-8 words, no numbering, no quotes).

Rules:
- Only use ids that appear in the listing.
- Aim for one chapter every 2-5 minutes of runtime.
- Respond with ONLY a JSON array, no commentary:
  [{"chunk_id": 1, "title": "Opening remarks"}, ...]

Transcript positions:
---
%s
---`

const topicsPrompt = `Summarize each numbered passage below into one short topic phrase
(5-10 words). Respond with ONLY a JSON array, no commentary:
[{"segment_id": 1, "topic": "..."}, ...]

Passages:
---
%s
---`

func (l *implLabeler) ProposeChapters(ctx context.Context, listing string) ([]chapters.Candidate, error) {
	if strings.TrimSpace(listing) == "" {
		return nil, nil
	}

	raw, err := l.provider.Complete(ctx, fmt.Sprintf(chapterPrompt, listing))
	if err != nil {
		return nil, fmt.Errorf("%s chapter proposal: %w", l.provider.Name(), err)
	}

	candidates, err := parseCandidates(raw)
	if err != nil {
		return nil, fmt.Errorf("parse %s chapter response: %w", l.provider.Name(), err)
	}

	l.logger.Debug(ctx, "Model proposed %d chapter candidates", len(candidates))
	return candidates, nil
}

func (l *implLabeler) TopicsFor(ctx context.Context, segments []chapters.Segment, chunks []chapters.Chunk) ([]string, error) {
	if len(segments) == 0 {
		return nil, nil
	}

	lines := make([]string, 0, len(segments))
	for _, s := range segments {
		lines = append(lines, fmt.Sprintf("%d. %s", s.ID, chapters.SegmentText(s, chunks)))
	}

	raw, err := l.provider.Complete(ctx, fmt.Sprintf(topicsPrompt, strings.Join(lines, "\n")))
	if err != nil {
		return nil, fmt.Errorf("%s topic summarization: %w", l.provider.Name(), err)
	}

	byID, err := parseTopics(raw)
	if err != nil {
		return nil, fmt.Errorf("parse %s topic response: %w", l.provider.Name(), err)
	}

	topics := make([]string, len(segments))
	missing := 0
	for i, s := range segments {
		if t, ok := byID[s.ID]; ok {
			topics[i] = t
		} else {
			missing++
		}
	}
	if missing > 0 {
		l.logger.Warn(ctx, "Model skipped %d of %d segment topics", missing, len(segments))
	}

	return topics, nil
}
