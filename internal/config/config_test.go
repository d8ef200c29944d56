package config

import (
	"os"
	"testing"
)

func validConfig() Config {
	return Config{
		Paths: PathsConfig{
			Input:  "data/input",
			Output: "data/output",
		},
		AI: AIConfig{
			Provider: "gemini",
			Gemini: GeminiConfig{
				APIKeys: []string{"key-1"},
			},
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "valid config",
			mutate: func(c *Config) {},
		},
		{
			name:    "missing input path",
			mutate:  func(c *Config) { c.Paths.Input = "" },
			wantErr: true,
		},
		{
			name:    "missing output path",
			mutate:  func(c *Config) { c.Paths.Output = "" },
			wantErr: true,
		},
		{
			name:    "gemini provider without keys",
			mutate:  func(c *Config) { c.AI.Gemini.APIKeys = nil },
			wantErr: true,
		},
		{
			name: "openai provider without key",
			mutate: func(c *Config) {
				c.AI.Provider = "openai"
			},
			wantErr: true,
		},
		{
			name: "openai provider with key",
			mutate: func(c *Config) {
				c.AI.Provider = "openai"
				c.AI.OpenAI.APIKey = "key"
			},
		},
		{
			name:    "unknown provider",
			mutate:  func(c *Config) { c.AI.Provider = "bedrock" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := validConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Chapters.TargetDuration != 30 {
		t.Errorf("TargetDuration = %d, want 30", cfg.Chapters.TargetDuration)
	}
	if cfg.Chapters.ChunksPerSegment != 4 {
		t.Errorf("ChunksPerSegment = %d, want 4", cfg.Chapters.ChunksPerSegment)
	}
	if cfg.Chapters.MaxDirectChunks != 60 {
		t.Errorf("MaxDirectChunks = %d, want 60", cfg.Chapters.MaxDirectChunks)
	}
	if cfg.AI.Gemini.Model != "gemini-2.5-flash" {
		t.Errorf("Gemini model = %q", cfg.AI.Gemini.Model)
	}
	if cfg.Performance.MaxConcurrent != 2 {
		t.Errorf("MaxConcurrent = %d, want 2", cfg.Performance.MaxConcurrent)
	}
	if cfg.Paths.Archived == "" || cfg.Paths.Temp == "" {
		t.Error("archived/temp paths should default when empty")
	}
}

func TestLoad(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
paths:
  input: "data/input"
  output: "data/output"

logging:
  level: "debug"

ai:
  provider: "gemini"
  gemini:
    api_keys:
      - "key-1"
      - "key-2"

chapters:
  target_duration: 45
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Paths.Input != "data/input" {
		t.Errorf("Input = %v, want data/input", cfg.Paths.Input)
	}
	if len(cfg.AI.Gemini.APIKeys) != 2 {
		t.Errorf("APIKeys = %v, want 2 keys", cfg.AI.Gemini.APIKeys)
	}
	if cfg.Chapters.TargetDuration != 45 {
		t.Errorf("TargetDuration = %d, want 45", cfg.Chapters.TargetDuration)
	}
	if cfg.Chapters.ChunksPerSegment != 4 {
		t.Errorf("ChunksPerSegment = %d, want default 4", cfg.Chapters.ChunksPerSegment)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	if _, err := Load("nonexistent.yaml"); err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}
