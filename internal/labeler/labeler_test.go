package labeler

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telltaleatheist/ContentStudio/internal/chapters"
	"github.com/telltaleatheist/ContentStudio/internal/config"
	"github.com/telltaleatheist/ContentStudio/internal/logger"
)

type stubProvider struct {
	response string
	err      error
	prompts  []string
}

func (s *stubProvider) Name() string { return "stub" }

func (s *stubProvider) Complete(ctx context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func TestProposeChapters(t *testing.T) {
	stub := &stubProvider{response: `[{"chunk_id": 1, "title": "Intro"}, {"chunk_id": 4, "title": "Wrap up"}]`}
	lab := New(stub, logger.New("error"))

	candidates, err := lab.ProposeChapters(context.Background(), "1. [0:00] Hello there.")
	require.NoError(t, err)

	assert.Equal(t, []chapters.Candidate{
		{Position: 1, Title: "Intro"},
		{Position: 4, Title: "Wrap up"},
	}, candidates)

	require.Len(t, stub.prompts, 1)
	assert.Contains(t, stub.prompts[0], "1. [0:00] Hello there.")
}

func TestProposeChaptersEmptyListing(t *testing.T) {
	stub := &stubProvider{}
	lab := New(stub, logger.New("error"))

	candidates, err := lab.ProposeChapters(context.Background(), "   ")
	require.NoError(t, err)
	assert.Empty(t, candidates)
	assert.Empty(t, stub.prompts, "no model call for an empty listing")
}

func TestProposeChaptersProviderError(t *testing.T) {
	stub := &stubProvider{err: fmt.Errorf("boom")}
	lab := New(stub, logger.New("error"))

	_, err := lab.ProposeChapters(context.Background(), "1. [0:00] Hello.")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestTopicsFor(t *testing.T) {
	stub := &stubProvider{response: `[{"segment_id": 1, "topic": "Opening"}, {"segment_id": 3, "topic": "Closing"}]`}
	lab := New(stub, logger.New("error"))

	chunkSeq := []chapters.Chunk{
		{ID: 1, Text: "Hello."},
		{ID: 2, Text: "World."},
		{ID: 3, Text: "Middle part."},
		{ID: 4, Text: "Goodbye."},
	}
	segments := []chapters.Segment{
		{ID: 1, ChunkIDs: []int{1, 2}},
		{ID: 2, ChunkIDs: []int{3}},
		{ID: 3, ChunkIDs: []int{4}},
	}

	topics, err := lab.TopicsFor(context.Background(), segments, chunkSeq)
	require.NoError(t, err)

	// Aligned with segments; the skipped one stays empty.
	assert.Equal(t, []string{"Opening", "", "Closing"}, topics)

	require.Len(t, stub.prompts, 1)
	assert.Contains(t, stub.prompts[0], "1. Hello. World.")
	assert.Contains(t, stub.prompts[0], "2. Middle part.")
}

func TestTopicsForNoSegments(t *testing.T) {
	stub := &stubProvider{}
	lab := New(stub, logger.New("error"))

	topics, err := lab.TopicsFor(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Empty(t, topics)
	assert.Empty(t, stub.prompts)
}

func TestNewFromConfig(t *testing.T) {
	log := logger.New("error")

	gemini := &config.Config{}
	gemini.AI.Provider = "gemini"
	gemini.AI.Gemini.APIKeys = []string{"key"}
	gemini.AI.Gemini.Model = "gemini-2.5-flash"

	lab, err := NewFromConfig(gemini, log)
	require.NoError(t, err)
	assert.NotNil(t, lab)

	openaiCfg := &config.Config{}
	openaiCfg.AI.Provider = "openai"
	openaiCfg.AI.OpenAI.APIKey = "key"
	openaiCfg.AI.OpenAI.Model = "gpt-4o-mini"

	lab, err = NewFromConfig(openaiCfg, log)
	require.NoError(t, err)
	assert.NotNil(t, lab)

	bad := &config.Config{}
	bad.AI.Provider = "carrier-pigeon"
	_, err = NewFromConfig(bad, log)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "carrier-pigeon"))
}
