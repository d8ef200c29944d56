package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// transcribeVideo extracts mono 16kHz audio with ffmpeg and runs
// whisper over it to produce an SRT transcript. Returns the SRT path
// and a cleanup func for the temp artifacts.
func (p *implProcessor) transcribeVideo(ctx context.Context, job, videoPath string) (string, func(), error) {
	if p.cfg.Whisper.BinaryPath == "" || p.cfg.Whisper.ModelPath == "" {
		return "", nil, fmt.Errorf("video input %s requires whisper.binary_path and whisper.model_path", videoPath)
	}

	tempDir, err := os.MkdirTemp(p.cfg.Paths.Temp, "transcribe-*")
	if err != nil {
		return "", nil, fmt.Errorf("create temp dir: %w", err)
	}
	cleanup := func() { os.RemoveAll(tempDir) }

	base := strings.TrimSuffix(filepath.Base(videoPath), filepath.Ext(videoPath))
	audioPath := filepath.Join(tempDir, base+".wav")

	p.logger.Info(ctx, "[%s] Extracting audio: %s", job, videoPath)
	ffmpegArgs := []string{
		"-i", videoPath,
		"-vn",
		"-ar", strconv.Itoa(p.cfg.FFmpeg.SampleRate),
		"-ac", "1",
		"-c:a", "pcm_s16le",
		"-threads", "0",
		"-y",
		audioPath,
	}
	if _, err := p.executor.Execute(ctx, "ffmpeg", ffmpegArgs...); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("ffmpeg extract audio: %w", err)
	}

	outputPrefix := filepath.Join(tempDir, base)
	p.logger.Info(ctx, "[%s] Transcribing with %d threads: %s", job, p.cfg.Whisper.Threads, audioPath)
	whisperArgs := []string{
		"-m", p.cfg.Whisper.ModelPath,
		"-f", audioPath,
		"-osrt",
		"-l", p.cfg.Whisper.Language,
		"-t", strconv.Itoa(p.cfg.Whisper.Threads),
		"--output-file", outputPrefix,
	}
	if _, err := p.executor.Execute(ctx, p.cfg.Whisper.BinaryPath, whisperArgs...); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("whisper transcribe: %w", err)
	}

	srtPath := outputPrefix + ".srt"
	p.logger.Info(ctx, "[%s] Transcription completed: %s", job, srtPath)
	return srtPath, cleanup, nil
}
