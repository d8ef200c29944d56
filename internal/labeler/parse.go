package labeler

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/telltaleatheist/ContentStudio/internal/chapters"
)

// rawCandidate tolerates both id keys the model tends to emit.
type rawCandidate struct {
	ChunkID   int    `json:"chunk_id"`
	SegmentID int    `json:"segment_id"`
	Title     string `json:"title"`
}

type rawTopic struct {
	SegmentID int    `json:"segment_id"`
	Topic     string `json:"topic"`
}

// parseCandidates extracts chapter candidates from a model response.
// The response should be a bare JSON array but often arrives wrapped
// in code fences or prose, so the first bracketed array is carved out
// before unmarshaling.
func parseCandidates(raw string) ([]chapters.Candidate, error) {
	body, err := extractJSONArray(raw)
	if err != nil {
		return nil, err
	}

	var parsed []rawCandidate
	if err := json.Unmarshal([]byte(body), &parsed); err != nil {
		return nil, fmt.Errorf("unmarshal candidate array: %w", err)
	}

	candidates := make([]chapters.Candidate, 0, len(parsed))
	for _, rc := range parsed {
		id := rc.ChunkID
		if id == 0 {
			id = rc.SegmentID
		}
		candidates = append(candidates, chapters.Candidate{
			Position: id,
			Title:    rc.Title,
		})
	}

	return candidates, nil
}

func parseTopics(raw string) (map[int]string, error) {
	body, err := extractJSONArray(raw)
	if err != nil {
		return nil, err
	}

	var parsed []rawTopic
	if err := json.Unmarshal([]byte(body), &parsed); err != nil {
		return nil, fmt.Errorf("unmarshal topic array: %w", err)
	}

	topics := make(map[int]string, len(parsed))
	for _, rt := range parsed {
		if t := strings.TrimSpace(rt.Topic); t != "" {
			topics[rt.SegmentID] = t
		}
	}
	return topics, nil
}

// extractJSONArray returns the first top-level JSON array in the text,
// stripping markdown code fences first.
func extractJSONArray(raw string) (string, error) {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if i := strings.LastIndex(s, "```"); i >= 0 {
			s = s[:i]
		}
		s = strings.TrimSpace(s)
	}

	start := strings.Index(s, "[")
	if start < 0 {
		return "", fmt.Errorf("no JSON array in response")
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		switch {
		case escaped:
			escaped = false
		case c == '\\' && inString:
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
		case c == '[':
			depth++
		case c == ']':
			depth--
			if depth == 0 {
				return s[start : i+1], nil
			}
		}
	}

	return "", fmt.Errorf("unterminated JSON array in response")
}
