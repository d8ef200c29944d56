package chapters

import (
	"fmt"
	"strings"
)

// FormatChunks renders the chunk listing handed to the labeling model,
// one "<id>. [<time>] <text>" line per chunk. The line format is the
// wire contract with that collaborator.
func FormatChunks(chunks []Chunk) string {
	lines := make([]string, 0, len(chunks))
	for _, ch := range chunks {
		lines = append(lines, fmt.Sprintf("%d. [%s] %s", ch.ID, ch.Time, ch.Text))
	}
	return strings.Join(lines, "\n")
}

// FormatSegments renders segments with their topics in the same line
// format as FormatChunks.
func FormatSegments(segments []Segment) string {
	lines := make([]string, 0, len(segments))
	for _, s := range segments {
		lines = append(lines, fmt.Sprintf("%d. [%s] %s", s.ID, s.Time, s.Topic))
	}
	return strings.Join(lines, "\n")
}

// SegmentText concatenates the member chunk texts of a segment, the
// input the labeling step summarizes into a topic.
func SegmentText(segment Segment, chunks []Chunk) string {
	byID := make(map[int]Chunk, len(chunks))
	for _, ch := range chunks {
		byID[ch.ID] = ch
	}

	parts := make([]string, 0, len(segment.ChunkIDs))
	for _, id := range segment.ChunkIDs {
		if ch, ok := byID[id]; ok && ch.Text != "" {
			parts = append(parts, ch.Text)
		}
	}
	return strings.Join(parts, " ")
}
