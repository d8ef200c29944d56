package transcript

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSRT = `1
00:00:00,000 --> 00:00:04,500
Welcome to the show.

2
00:00:04,500 --> 00:00:09,000
Today we cover three topics
across two lines.

3
00:00:09,000 --> 00:00:13,250
Let's get started.
`

func TestParse(t *testing.T) {
	spans, err := Parse(strings.NewReader(sampleSRT))
	require.NoError(t, err)
	require.Len(t, spans, 3)

	assert.Equal(t, Span{
		Sequence:  1,
		StartTime: "00:00:00,000",
		EndTime:   "00:00:04,500",
		Text:      "Welcome to the show.",
	}, spans[0])

	// Multi-line text joins with single spaces.
	assert.Equal(t, "Today we cover three topics across two lines.", spans[1].Text)
	assert.Equal(t, "00:00:09,000", spans[2].StartTime)
}

func TestParseCRLF(t *testing.T) {
	crlf := strings.ReplaceAll(sampleSRT, "\n", "\r\n")
	spans, err := Parse(strings.NewReader(crlf))
	require.NoError(t, err)
	require.Len(t, spans, 3)
	assert.Equal(t, "Welcome to the show.", spans[0].Text)
}

func TestParseTrailingBlockWithoutBlankLine(t *testing.T) {
	spans, err := Parse(strings.NewReader(strings.TrimRight(sampleSRT, "\n")))
	require.NoError(t, err)
	assert.Len(t, spans, 3)
}

func TestParseEmptyInput(t *testing.T) {
	spans, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, spans)
}

func TestParseMalformedTimeLine(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing arrow", "1\n00:00:00,000 00:00:04,500\ntext\n"},
		{"missing millis", "1\n00:00:00 --> 00:00:04\ntext\n"},
		{"garbage", "1\nnot a time line\ntext\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			require.Error(t, err)
		})
	}
}

func TestParseInvalidSequence(t *testing.T) {
	_, err := Parse(strings.NewReader("abc\n00:00:00,000 --> 00:00:04,500\ntext\n"))
	require.Error(t, err)
}

func TestParseBlockWithoutText(t *testing.T) {
	spans, err := Parse(strings.NewReader("1\n00:00:00,000 --> 00:00:04,500\n"))
	require.NoError(t, err)
	require.Len(t, spans, 1)
	assert.Empty(t, spans[0].Text)
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.srt")
	require.NoError(t, os.WriteFile(path, []byte(sampleSRT), 0644))

	spans, err := ParseFile(path)
	require.NoError(t, err)
	assert.Len(t, spans, 3)

	_, err = ParseFile(filepath.Join(t.TempDir(), "missing.srt"))
	require.Error(t, err)
}
