package config

import "fmt"

type Config struct {
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	AI          AIConfig          `yaml:"ai"`
	Chapters    ChaptersConfig    `yaml:"chapters"`
	Whisper     WhisperConfig     `yaml:"whisper"`
	FFmpeg      FFmpegConfig      `yaml:"ffmpeg"`
	Performance PerformanceConfig `yaml:"performance"`
}

type PathsConfig struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Archived string `yaml:"archived"`
	Temp     string `yaml:"temp"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type AIConfig struct {
	Provider string       `yaml:"provider"` // "gemini" or "openai"
	Gemini   GeminiConfig `yaml:"gemini"`
	OpenAI   OpenAIConfig `yaml:"openai"`
}

type GeminiConfig struct {
	APIKeys []string `yaml:"api_keys"`
	Model   string   `yaml:"model"`
}

type OpenAIConfig struct {
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"`
}

type ChaptersConfig struct {
	// TargetDuration is the chunk length in seconds the segmenter aims for.
	TargetDuration int `yaml:"target_duration"`
	// ChunksPerSegment sets the hierarchical grouping size for long inputs.
	ChunksPerSegment int `yaml:"chunks_per_segment"`
	// MaxDirectChunks is the chunk count above which the pipeline labels
	// segments instead of raw chunks.
	MaxDirectChunks int `yaml:"max_direct_chunks"`
}

// WhisperConfig drives the optional video transcription front end.
type WhisperConfig struct {
	ModelPath  string `yaml:"model_path"`
	BinaryPath string `yaml:"binary_path"`
	Language   string `yaml:"language"`
	Threads    int    `yaml:"threads"`
}

type FFmpegConfig struct {
	SampleRate int `yaml:"sample_rate"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

func (c *Config) Validate() error {
	if c.Paths.Input == "" {
		return fmt.Errorf("paths.input is required")
	}
	if c.Paths.Output == "" {
		return fmt.Errorf("paths.output is required")
	}

	switch c.AI.Provider {
	case "", "gemini":
		c.AI.Provider = "gemini"
		if len(c.AI.Gemini.APIKeys) == 0 {
			return fmt.Errorf("ai.gemini.api_keys is required for the gemini provider")
		}
	case "openai":
		if c.AI.OpenAI.APIKey == "" {
			return fmt.Errorf("ai.openai.api_key is required for the openai provider")
		}
	default:
		return fmt.Errorf("ai.provider must be \"gemini\" or \"openai\", got %q", c.AI.Provider)
	}

	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}
	if c.AI.Gemini.Model == "" {
		c.AI.Gemini.Model = "gemini-2.5-flash"
	}
	if c.AI.OpenAI.Model == "" {
		c.AI.OpenAI.Model = "gpt-4o-mini"
	}
	if c.Chapters.TargetDuration == 0 {
		c.Chapters.TargetDuration = 30
	}
	if c.Chapters.ChunksPerSegment == 0 {
		c.Chapters.ChunksPerSegment = 4
	}
	if c.Chapters.MaxDirectChunks == 0 {
		c.Chapters.MaxDirectChunks = 60
	}
	if c.Whisper.Language == "" {
		c.Whisper.Language = "en"
	}
	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = 8
	}
	if c.FFmpeg.SampleRate == 0 {
		c.FFmpeg.SampleRate = 16000
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}

	return nil
}
