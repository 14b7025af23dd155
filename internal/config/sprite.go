package config

import (
	"context"
	"path/filepath"

	"github.com/sethvargo/go-envconfig"
)

type SpriteConfig struct {
	Dir  string `env:"SPRITE_DIR, default=public/assets/sprites"`
	Base string `env:"SPRITE_BASE, default=character-1-spritesheet.png"`
}

func NewSpriteConfigFromEnv() (*SpriteConfig, error) {
	var cfg SpriteConfig
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// BasePath resolves Base against Dir unless Base is absolute.
func (c *SpriteConfig) BasePath() string {
	if filepath.IsAbs(c.Base) {
		return c.Base
	}
	return filepath.Join(c.Dir, c.Base)
}
