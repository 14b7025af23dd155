package config

import (
	"context"

	"github.com/sethvargo/go-envconfig"
)

type AudioConfig struct {
	OutputDir string `env:"AUDIO_OUTPUT_DIR, default=public/audio"`
}

func NewAudioConfigFromEnv() (*AudioConfig, error) {
	var cfg AudioConfig
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
