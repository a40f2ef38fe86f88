package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/younwookim/portalknight/internal/domain/entity"
)

// ErrResourceNotFound is returned when a config file or level map is missing
var ErrResourceNotFound = errors.New("resource not found")

// GameFile is the name of the root config file
const GameFile = "game.yaml"

// Loader loads game configuration and level maps using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// Open picks the config source.
// Search order: customDir -> ~/.portalknight/configs -> ./configs -> embedded.
// A customDir that does not hold game.yaml is an error; the other
// locations are skipped silently.
func Open(customDir string, embedded fs.FS) (*Loader, error) {
	if customDir != "" {
		l := NewLoader(customDir)
		if !l.has(GameFile) {
			return nil, fmt.Errorf("config dir %s: %w", customDir, ErrResourceNotFound)
		}
		return l, nil
	}

	if dir := userConfigDir(); dir != "" {
		if l := NewLoader(dir); l.has(GameFile) {
			return l, nil
		}
	}

	if l := NewLoader("configs"); l.has(GameFile) {
		return l, nil
	}

	return NewFSLoader(embedded, "embedded"), nil
}

// userConfigDir returns the user config directory, or empty if home is unavailable.
func userConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".portalknight", "configs")
}

// Source returns a description of where configs are read from
func (l *Loader) Source() string {
	return l.basePath
}

// FS returns the underlying filesystem
func (l *Loader) FS() fs.FS {
	return l.fsys
}

func (l *Loader) has(name string) bool {
	_, err := fs.Stat(l.fsys, name)
	return err == nil
}

func (l *Loader) read(name string) ([]byte, error) {
	data, err := fs.ReadFile(l.fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read %s: %w", name, ErrResourceNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return data, nil
}

// LoadGame loads game.yaml on top of the defaults and validates it
func (l *Loader) LoadGame() (*GameConfig, error) {
	data, err := l.read(GameFile)
	if err != nil {
		return nil, err
	}

	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", GameFile, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", GameFile, err)
	}

	return cfg, nil
}

// LoadLevel loads a level map from levels/<name>
func (l *Loader) LoadLevel(name string) (*entity.Grid, error) {
	data, err := l.read(path.Join("levels", name))
	if err != nil {
		return nil, fmt.Errorf("failed to load level %s: %w", name, err)
	}
	return entity.ParseText(string(data)), nil
}
