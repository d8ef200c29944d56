package transcript

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// Span is a single time-coded subtitle entry. Spans arrive in
// non-decreasing StartTime order; the parser preserves file order and
// never re-sorts.
type Span struct {
	Sequence  int
	StartTime string // hh:mm:ss,mmm
	EndTime   string // hh:mm:ss,mmm
	Text      string
}

var reTimeLine = regexp.MustCompile(`^(\d{2}:\d{2}:\d{2},\d{3})\s+-->\s+(\d{2}:\d{2}:\d{2},\d{3})$`)

// ParseFile reads an SRT file into spans.
func ParseFile(path string) ([]Span, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open subtitle file: %w", err)
	}
	defer f.Close()

	spans, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return spans, nil
}

// Parse reads SRT content: blank-line separated blocks of a sequence
// number, a "start --> end" time line, and one or more text lines.
// Multi-line text is joined with single spaces. A malformed time line
// is a hard error; empty blocks are skipped.
func Parse(r io.Reader) ([]Span, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var spans []Span
	var block []string

	flush := func() error {
		if len(block) == 0 {
			return nil
		}
		span, err := parseBlock(block)
		block = block[:0]
		if err != nil {
			return err
		}
		spans = append(spans, span)
		return nil
	}

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		}
		block = append(block, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read subtitle stream: %w", err)
	}
	if err := flush(); err != nil {
		return nil, err
	}

	return spans, nil
}

func parseBlock(lines []string) (Span, error) {
	if len(lines) < 2 {
		return Span{}, fmt.Errorf("incomplete subtitle block %q", strings.Join(lines, " / "))
	}

	seq, err := strconv.Atoi(strings.TrimSpace(lines[0]))
	if err != nil {
		return Span{}, fmt.Errorf("invalid sequence number %q: %w", lines[0], err)
	}

	m := reTimeLine.FindStringSubmatch(strings.TrimSpace(lines[1]))
	if m == nil {
		return Span{}, fmt.Errorf("invalid time line %q in block %d", lines[1], seq)
	}

	var text []string
	for _, l := range lines[2:] {
		if t := strings.TrimSpace(l); t != "" {
			text = append(text, t)
		}
	}

	return Span{
		Sequence:  seq,
		StartTime: m[1],
		EndTime:   m[2],
		Text:      strings.Join(text, " "),
	}, nil
}
