package main

import (
	"fmt"
	"io/fs"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"

	"github.com/younwookim/portalknight/internal/application/session"
	"github.com/younwookim/portalknight/internal/infrastructure/assets"
	"github.com/younwookim/portalknight/internal/infrastructure/config"
	"github.com/younwookim/portalknight/internal/infrastructure/sound"
)

// runtime holds everything loaded from config and assets before a run
type runtime struct {
	loader   *config.Loader
	cfg      *config.GameConfig
	session  session.Config
	provider assets.Provider
	sprites  *assets.Library
}

// loadRuntime loads the config, then every sprite sheet.
// Any missing resource is an error.
func loadRuntime() (*runtime, error) {
	embedded, err := configSub()
	if err != nil {
		return nil, err
	}
	loader, err := config.Open(flagConfig, embedded)
	if err != nil {
		return nil, err
	}
	return newRuntime(loader, flagAssets)
}

// configSub returns the embedded configs rooted at game.yaml
func configSub() (fs.FS, error) {
	sub, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return sub, nil
}

func newRuntime(loader *config.Loader, assetDir string) (*runtime, error) {
	cfg, err := loader.LoadGame()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	scfg, err := session.ConfigFrom(cfg)
	if err != nil {
		return nil, err
	}

	rate := beep.SampleRate(cfg.Audio.SampleRate)
	var provider assets.Provider = assets.NewBuiltin(rate)
	if assetDir != "" {
		provider = assets.NewFSProvider(assetDir, rate)
	}

	lib, err := assets.NewLibrary(provider, cfg.Sprites)
	if err != nil {
		return nil, fmt.Errorf("failed to load sprites: %w", err)
	}

	log.Debug("config loaded", "source", loader.Source(), "levels", cfg.LevelCount(), "assets", assetDir)
	return &runtime{
		loader:   loader,
		cfg:      cfg,
		session:  scfg,
		provider: provider,
		sprites:  lib,
	}, nil
}

// pickupCue loads the configured pickup sound, or synthesizes one
func (rt *runtime) pickupCue() (*sound.Clip, error) {
	a := rt.cfg.Audio
	if a.Pickup == "" {
		return sound.PickupCue(beep.SampleRate(a.SampleRate)).WithVolume(a.Volume), nil
	}
	clip, err := rt.provider.LoadAudio(a.Pickup)
	if err != nil {
		return nil, fmt.Errorf("failed to load pickup sound: %w", err)
	}
	return clip.WithVolume(a.Volume), nil
}

// dbPath prefers --db over the configured storage path
func (rt *runtime) dbPath() string {
	if flagDBPath != "" {
		return flagDBPath
	}
	return rt.cfg.Storage.Path
}
