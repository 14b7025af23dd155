package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/glizzus/assetgen/internal/batch"
	"github.com/glizzus/assetgen/internal/config"
	"github.com/glizzus/assetgen/internal/datalayer"
	"github.com/glizzus/assetgen/internal/generator"
	"github.com/glizzus/assetgen/internal/manifest"
	"github.com/glizzus/assetgen/internal/placeholder"
	"github.com/glizzus/assetgen/internal/presenters"
	"github.com/glizzus/assetgen/internal/recolor"
	"github.com/urfave/cli/v2"
)

const runIDKey = "runID"

var runIDGenerator generator.Generator[string] = &generator.UUIDV4Generator{}

const (
	manifestFlagName = "manifest"
	publishFlagName  = "publish"
)

func manifestFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  manifestFlagName,
		Usage: "YAML manifest replacing the built-in asset tables",
	}
}

func publishFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:  publishFlagName,
		Usage: "Upload generated files to the MinIO bucket configured by MINIO_* variables",
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:        "assetgen",
		Usage:       "Generate placeholder audio and recolored sprite sheets",
		Description: "Offline asset preparation: silent MP3 placeholders and character sprite variations",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level (debug, info, warn, error); overrides LOG_LEVEL",
			},
		},
		Before: setupLogging,
		Commands: []*cli.Command{
			audioCommand(),
			spritesCommand(),
			inspectCommand(),
			manifestCommand(),
		},
	}
}

func setupLogging(c *cli.Context) error {
	logConfig, err := config.NewLogConfigFromEnv()
	if err != nil {
		return fmt.Errorf("failed to load log config: %w", err)
	}
	if c.IsSet("log-level") {
		logConfig.Level = c.String("log-level")
	}
	handler, err := logConfig.Handler(c.App.ErrWriter)
	if err != nil {
		return err
	}

	runID := generator.NextOr(runIDGenerator, "unknown")
	if c.App.Metadata == nil {
		c.App.Metadata = map[string]interface{}{}
	}
	c.App.Metadata[runIDKey] = runID
	slog.SetDefault(slog.New(handler).With(slog.String(runIDKey, runID)))
	return nil
}

func runID(c *cli.Context) string {
	id, _ := c.App.Metadata[runIDKey].(string)
	return id
}

func loadManifest(c *cli.Context) (*manifest.Manifest, error) {
	path := c.String(manifestFlagName)
	if path == "" {
		return manifest.Default(), nil
	}
	return manifest.Load(path)
}

func audioCommand() *cli.Command {
	return &cli.Command{
		Name:  "audio",
		Usage: "Write silent MP3 placeholder tracks",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "out-dir",
				Usage: "Directory to write tracks to; overrides AUDIO_OUTPUT_DIR",
			},
			manifestFlag(),
			publishFlag(),
		},
		Action: func(c *cli.Context) error {
			cfg, err := config.NewAudioConfigFromEnv()
			if err != nil {
				return cli.Exit("Failed to load audio config: "+err.Error(), 1)
			}
			if c.IsSet("out-dir") {
				cfg.OutputDir = c.String("out-dir")
			}

			m, err := loadManifest(c)
			if err != nil {
				return cli.Exit("Failed to load manifest: "+err.Error(), 1)
			}

			results, err := placeholder.Generate(c.Context, cfg.OutputDir, m.Tracks())
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}
			presenters.WriteResults(c.App.Writer, results)

			return finish(c, results)
		},
	}
}

func spritesCommand() *cli.Command {
	return &cli.Command{
		Name:  "sprites",
		Usage: "Write recolored character sprite sheets from the base sheet",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "dir",
				Usage: "Sprite directory; overrides SPRITE_DIR",
			},
			&cli.StringFlag{
				Name:  "base",
				Usage: "Base sprite sheet, relative to the sprite directory unless absolute; overrides SPRITE_BASE",
			},
			manifestFlag(),
			publishFlag(),
		},
		Action: func(c *cli.Context) error {
			cfg, err := config.NewSpriteConfigFromEnv()
			if err != nil {
				return cli.Exit("Failed to load sprite config: "+err.Error(), 1)
			}
			if c.IsSet("dir") {
				cfg.Dir = c.String("dir")
			}
			if c.IsSet("base") {
				cfg.Base = c.String("base")
			}

			m, err := loadManifest(c)
			if err != nil {
				return cli.Exit("Failed to load manifest: "+err.Error(), 1)
			}

			results, err := recolor.Generate(c.Context, cfg.BasePath(), m.Variations(cfg.Dir))
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}
			presenters.WriteResults(c.App.Writer, results)

			return finish(c, results)
		},
	}
}

func inspectCommand() *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Usage:     "Parse placeholder MP3 files and print their frame summary",
		ArgsUsage: "FILE...",
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return cli.Exit("Please provide at least one file to inspect", 1)
			}

			failed := 0
			for _, path := range c.Args().Slice() {
				summary, err := inspectFile(path)
				if err != nil {
					failed++
					presenters.WriteFailure(c.App.Writer, path, err)
					continue
				}
				presenters.WriteSummary(c.App.Writer, path, summary)
			}
			if failed > 0 {
				return cli.Exit(fmt.Sprintf("%d of %d files could not be parsed", failed, c.NArg()), 1)
			}
			return nil
		},
	}
}

func inspectFile(path string) (*placeholder.Summary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return placeholder.Inspect(f)
}

func manifestCommand() *cli.Command {
	return &cli.Command{
		Name:  "manifest",
		Usage: "Print the built-in asset tables as a YAML manifest",
		Action: func(c *cli.Context) error {
			return manifest.Default().Encode(c.App.Writer)
		},
	}
}

// finish publishes the generated files when requested and turns any
// failure into a non-zero exit after the whole batch has run.
func finish(c *cli.Context, results batch.Results) error {
	failed := len(results.Failed())

	if c.Bool(publishFlagName) {
		storage, err := datalayer.NewMinioStorageFromEnv()
		if err != nil {
			return cli.Exit("Failed to create minio storage: "+err.Error(), 1)
		}
		if err := storage.EnsureBucket(c.Context); err != nil {
			return cli.Exit("Failed to ensure minio bucket: "+err.Error(), 1)
		}
		prefix := storage.Prefix() + "/" + runID(c)
		failed += len(datalayer.Publish(c.Context, storage, prefix, results).Failed())
	}

	if failed > 0 {
		return cli.Exit(fmt.Sprintf("%d of %d assets failed", failed, len(results)), 1)
	}
	return nil
}
