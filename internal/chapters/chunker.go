package chapters

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/telltaleatheist/ContentStudio/internal/transcript"
)

const (
	// DefaultTargetDuration is the chunk length the segmenter aims for.
	DefaultTargetDuration = 30

	// DefaultChunksPerSegment groups ~30s chunks into ~2 minute segments.
	DefaultChunksPerSegment = 4
)

// Chunk is a slice of transcript text of roughly target duration,
// anchored to its start offset. Time is display-only; StartSeconds is
// used for all arithmetic.
type Chunk struct {
	ID           int
	Time         string
	Text         string
	StartSeconds float64
}

// Segment groups several consecutive chunks. Topic starts empty and is
// filled by the external labeling step.
type Segment struct {
	ID           int
	Time         string
	Topic        string
	ChunkIDs     []int
	StartSeconds float64
}

// Chunker splits ordered transcript spans into chunks at sentence
// boundaries.
type Chunker struct {
	targetDuration int
}

// NewChunker creates a Chunker. A non-positive target duration falls
// back to the default.
func NewChunker(targetDuration int) *Chunker {
	if targetDuration <= 0 {
		targetDuration = DefaultTargetDuration
	}
	return &Chunker{targetDuration: targetDuration}
}

// Chunks converts spans into chunks of approximately targetDuration
// seconds. A chunk closes at the first span boundary past the target;
// when the buffered text contains an internal sentence break, the last
// (possibly incomplete) sentence is carried into the next chunk so the
// cut lands on a complete thought. Remaining text flushes as a final
// chunk regardless of duration.
func (c *Chunker) Chunks(spans []transcript.Span) ([]Chunk, error) {
	if len(spans) == 0 {
		return nil, nil
	}

	var (
		chunks       []Chunk
		buffer       []string
		chunkStarted bool
		chunkStart   float64
		chunkID      = 1
	)

	for _, span := range spans {
		startSeconds, err := ParseTimestamp(span.StartTime)
		if err != nil {
			return nil, fmt.Errorf("span %d: %w", span.Sequence, err)
		}

		if !chunkStarted {
			chunkStart = startSeconds
			chunkStarted = true
		}

		buffer = append(buffer, strings.TrimSpace(span.Text))

		if startSeconds-chunkStart < float64(c.targetDuration) {
			continue
		}

		fullText := strings.Join(buffer, " ")
		sentences := splitSentences(fullText)

		if len(sentences) > 1 {
			// Close on the last complete sentence and seed the next
			// chunk with the trailing partial one.
			chunks = append(chunks, Chunk{
				ID:           chunkID,
				Time:         FormatClock(chunkStart),
				Text:         strings.Join(sentences[:len(sentences)-1], " "),
				StartSeconds: chunkStart,
			})
			buffer = []string{sentences[len(sentences)-1]}
		} else {
			// No internal sentence boundary: close the whole buffer.
			chunks = append(chunks, Chunk{
				ID:           chunkID,
				Time:         FormatClock(chunkStart),
				Text:         fullText,
				StartSeconds: chunkStart,
			})
			buffer = nil
		}

		chunkID++
		chunkStart = startSeconds
	}

	if len(buffer) > 0 {
		chunks = append(chunks, Chunk{
			ID:           chunkID,
			Time:         FormatClock(chunkStart),
			Text:         strings.Join(buffer, " "),
			StartSeconds: chunkStart,
		})
	}

	return chunks, nil
}

// SegmentChunks groups chunks into fixed-size consecutive windows. The
// final segment may be shorter when the count does not divide evenly.
// Topics are left empty for the labeling step.
func SegmentChunks(chunks []Chunk, perSegment int) []Segment {
	if perSegment <= 0 {
		perSegment = DefaultChunksPerSegment
	}

	var segments []Segment
	for i := 0; i < len(chunks); i += perSegment {
		end := min(i+perSegment, len(chunks))
		members := chunks[i:end]

		ids := make([]int, 0, len(members))
		for _, ch := range members {
			ids = append(ids, ch.ID)
		}

		segments = append(segments, Segment{
			ID:           len(segments) + 1,
			Time:         members[0].Time,
			ChunkIDs:     ids,
			StartSeconds: members[0].StartSeconds,
		})
	}

	return segments
}

// Sentence boundaries: terminal punctuation, whitespace, then an
// uppercase letter. Decimal numbers and lowercase abbreviations do not
// match. Go regexp has no lookaround, so the match is located and the
// cut is placed after the punctuation, keeping the capital with the
// following sentence.
var reSentenceBreak = regexp.MustCompile(`[.!?]\s+[A-Z]`)

func splitSentences(text string) []string {
	var sentences []string
	start := 0

	for _, loc := range reSentenceBreak.FindAllStringIndex(text, -1) {
		// loc[0] is the punctuation; the next sentence begins at the
		// capital, one byte before the match end.
		if loc[0] < start {
			continue
		}
		if s := strings.TrimSpace(text[start : loc[0]+1]); s != "" {
			sentences = append(sentences, s)
		}
		start = loc[1] - 1
	}

	if s := strings.TrimSpace(text[start:]); s != "" {
		sentences = append(sentences, s)
	}

	return sentences
}
