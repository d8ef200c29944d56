package processor

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/telltaleatheist/ContentStudio/internal/chapters"
	"github.com/telltaleatheist/ContentStudio/internal/transcript"
)

// Process runs the chapter pipeline for one file: obtain an SRT
// transcript, chunk it, label positions, map candidates to validated
// chapters, and write the outputs. An input that cannot support a
// chapter list is not an error; it is archived without outputs.
func (p *implProcessor) Process(ctx context.Context, path string) error {
	startTime := time.Now()
	job := uuid.NewString()[:8]
	sourceName := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	p.logger.Info(ctx, "[%s] Processing: %s", job, path)

	srtPath := path
	if isVideoFile(path) {
		transcribed, cleanup, err := p.transcribeVideo(ctx, job, path)
		if err != nil {
			return fmt.Errorf("transcribe video: %w", err)
		}
		defer cleanup()
		srtPath = transcribed
	}

	spans, err := transcript.ParseFile(srtPath)
	if err != nil {
		return fmt.Errorf("parse transcript: %w", err)
	}

	if len(spans) == 0 {
		p.logger.Info(ctx, "[%s] Empty transcript, nothing to chapter", job)
		return p.archive(ctx, job, path)
	}

	list, err := p.generateChapters(ctx, job, spans)
	if err != nil {
		return fmt.Errorf("generate chapters: %w", err)
	}

	if len(list) == 0 {
		p.logger.Info(ctx, "[%s] Transcript cannot support a publishable chapter list, skipping output", job)
		return p.archive(ctx, job, path)
	}

	outPath, err := p.report.Write(ctx, sourceName, list)
	if err != nil {
		return fmt.Errorf("write chapter outputs: %w", err)
	}

	if err := p.archive(ctx, job, path); err != nil {
		return err
	}

	p.logger.Info(ctx, "[%s] Done: %d chapters -> %s (%s)", job, len(list), outPath, time.Since(startTime))
	return nil
}

// generateChapters runs the segmenter, the external labeling step, and
// the position mapper. Long transcripts are grouped into topic-labeled
// segments first to keep the listing bounded.
func (p *implProcessor) generateChapters(ctx context.Context, job string, spans []transcript.Span) ([]chapters.Chapter, error) {
	chunker := chapters.NewChunker(p.cfg.Chapters.TargetDuration)
	chunks, err := chunker.Chunks(spans)
	if err != nil {
		return nil, err
	}
	if len(chunks) == 0 {
		return nil, nil
	}

	var (
		listing string
		anchors []chapters.Anchor
	)

	if len(chunks) > p.cfg.Chapters.MaxDirectChunks {
		segments := chapters.SegmentChunks(chunks, p.cfg.Chapters.ChunksPerSegment)
		p.logger.Info(ctx, "[%s] %d chunks, grouping into %d segments for labeling", job, len(chunks), len(segments))

		topics, err := p.labeler.TopicsFor(ctx, segments, chunks)
		if err != nil {
			return nil, err
		}
		for i := range segments {
			if topics[i] != "" {
				segments[i].Topic = topics[i]
			} else {
				// Model skipped this one; fall back to raw text so the
				// listing line is never blank.
				segments[i].Topic = chapters.SegmentText(segments[i], chunks)
			}
		}

		listing = chapters.FormatSegments(segments)
		anchors = chapters.SegmentAnchors(segments)
	} else {
		p.logger.Info(ctx, "[%s] Labeling %d chunks directly", job, len(chunks))
		listing = chapters.FormatChunks(chunks)
		anchors = chapters.ChunkAnchors(chunks)
	}

	candidates, err := p.labeler.ProposeChapters(ctx, listing)
	if err != nil {
		return nil, err
	}
	p.logger.Debug(ctx, "[%s] %d candidates from labeler", job, len(candidates))

	return chapters.NewMapper(anchors).Map(candidates), nil
}

func isVideoFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp4", ".mov", ".avi", ".mkv", ".webm", ".m4v", ".flv":
		return true
	}
	return false
}

// IsSupported reports whether the watcher should hand this file to the
// processor.
func IsSupported(path string) bool {
	return isVideoFile(path) || strings.EqualFold(filepath.Ext(path), ".srt")
}
