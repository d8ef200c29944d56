package chapters

import (
	"sort"
	"strings"
)

const (
	// Platform chapter-list policy. A first chapter must sit at the
	// zero offset, every chapter needs at least 10 seconds before its
	// successor, and fewer than 3 surviving chapters means no chapter
	// list at all.
	minChapterCount   = 3
	minChapterSeconds = 10

	introTitle = "Introduction"
)

// Candidate is an externally proposed chapter referencing a chunk or
// segment id. Candidate generation is noisy; unknown ids and empty
// titles are expected and filtered, not errors.
type Candidate struct {
	Position int    `json:"chunk_id"`
	Title    string `json:"title"`
}

// Chapter is a final validated marker ready for publication.
type Chapter struct {
	Timestamp string `json:"timestamp"`
	Title     string `json:"title"`
	Sequence  int    `json:"sequence"`
}

// Anchor is the id/timestamp pair the mapper resolves candidates
// against. Chunks and segments both reduce to anchors.
type Anchor struct {
	ID           int
	Time         string
	StartSeconds float64
}

// Anchor adapts a chunk for candidate resolution.
func (c Chunk) Anchor() Anchor {
	return Anchor{ID: c.ID, Time: c.Time, StartSeconds: c.StartSeconds}
}

// Anchor adapts a segment for candidate resolution.
func (s Segment) Anchor() Anchor {
	return Anchor{ID: s.ID, Time: s.Time, StartSeconds: s.StartSeconds}
}

// ChunkAnchors converts a chunk sequence into mapper anchors.
func ChunkAnchors(chunks []Chunk) []Anchor {
	anchors := make([]Anchor, 0, len(chunks))
	for _, c := range chunks {
		anchors = append(anchors, c.Anchor())
	}
	return anchors
}

// SegmentAnchors converts a segment sequence into mapper anchors.
func SegmentAnchors(segments []Segment) []Anchor {
	anchors := make([]Anchor, 0, len(segments))
	for _, s := range segments {
		anchors = append(anchors, s.Anchor())
	}
	return anchors
}

// Mapper resolves chapter candidates against an immutable id index
// built once per invocation.
type Mapper struct {
	index map[int]Anchor
}

// NewMapper builds the id index for one mapping call.
func NewMapper(anchors []Anchor) *Mapper {
	index := make(map[int]Anchor, len(anchors))
	for _, a := range anchors {
		index[a.ID] = a
	}
	return &Mapper{index: index}
}

// provisional pairs a chapter with the whole-second offset used for
// ordering and duration checks. Offsets are truncated to whole seconds
// so ordering matches the display form exactly.
type provisional struct {
	Chapter
	seconds int
}

// Map turns candidates into the final ordered chapter list. Unknown
// ids and blank titles are dropped silently, the list is stably sorted
// by offset, a zero-offset chapter is synthesized when missing,
// chapters under the minimum duration are removed, and anything short
// of the minimum count collapses to an empty result.
func (m *Mapper) Map(candidates []Candidate) []Chapter {
	var mapped []provisional

	for i, cand := range candidates {
		title := strings.TrimSpace(cand.Title)
		if title == "" {
			continue
		}
		anchor, ok := m.index[cand.Position]
		if !ok {
			continue
		}
		mapped = append(mapped, provisional{
			Chapter: Chapter{
				Timestamp: anchor.Time,
				Title:     title,
				Sequence:  i,
			},
			seconds: int(anchor.StartSeconds),
		})
	}

	// Stable: ties keep their candidate-list order.
	sort.SliceStable(mapped, func(i, j int) bool {
		return mapped[i].seconds < mapped[j].seconds
	})

	if len(mapped) > 0 && mapped[0].seconds != 0 {
		mapped = append([]provisional{{
			Chapter: Chapter{Timestamp: FormatClock(0), Title: introTitle},
		}}, mapped...)
	}

	var valid []Chapter
	for i, ch := range mapped {
		if i < len(mapped)-1 && mapped[i+1].seconds-ch.seconds < minChapterSeconds {
			// Too little unique runtime before the next chapter; the
			// earlier one is dropped. The last chapter has no
			// successor and is never dropped here.
			continue
		}
		ch.Sequence = len(valid)
		valid = append(valid, ch.Chapter)
	}

	if len(valid) < minChapterCount {
		return nil
	}

	return valid
}
