package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/brandonbloom/wslrun/internal/cmdline"
	"github.com/brandonbloom/wslrun/internal/status"
	"github.com/natefinch/atomic"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"
)

// FileName is the configuration file looked up next to the runner binary.
const FileName = "wslrun.toml"

// Config captures the optional user settings stored in wslrun.toml.
type Config struct {
	LogLevel string        `toml:"log_level"`
	Bridge   BridgeBlock   `toml:"bridge"`
	Captions CaptionsBlock `toml:"captions"`
}

// BridgeBlock describes the command used to enter the guest environment.
type BridgeBlock struct {
	Path            string `toml:"path"`
	EnvironmentFlag string `toml:"environment_flag"`
	UserFlag        string `toml:"user_flag"`
	DirFlag         string `toml:"dir_flag"`
}

// CaptionsBlock holds the texts printed in the status footer.
type CaptionsBlock struct {
	ExitCode string `toml:"exit_code"`
	Elapsed  string `toml:"elapsed"`
	Done     string `toml:"done"`
}

var (
	// ErrInvalidBridge indicates a bridge path or flag is empty or contains whitespace.
	ErrInvalidBridge = errors.New("config.bridge path and flags must be non-empty and contain no whitespace")
	// ErrInvalidLogLevel indicates the log level is not recognized.
	ErrInvalidLogLevel = errors.New("config.log_level must be one of panic, fatal, error, warn, info, debug, trace")
	// ErrExists indicates WriteDefault found a configuration already in place.
	ErrExists = errors.New("configuration file already exists")
)

// Default returns the built-in configuration.
func Default() Config {
	var cfg Config
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = "warn"
	} else {
		c.LogLevel = strings.ToLower(c.LogLevel)
	}
	c.Bridge.applyDefaults()
	c.Captions.applyDefaults()
}

func (b *BridgeBlock) applyDefaults() {
	def := cmdline.DefaultBridge()
	if b.Path == "" {
		b.Path = def.Path
	}
	if b.EnvironmentFlag == "" {
		b.EnvironmentFlag = def.EnvironmentFlag
	}
	if b.UserFlag == "" {
		b.UserFlag = def.UserFlag
	}
	if b.DirFlag == "" {
		b.DirFlag = def.DirFlag
	}
}

func (b *CaptionsBlock) applyDefaults() {
	def := status.DefaultCaptions()
	if b.ExitCode == "" {
		b.ExitCode = def.ExitCode
	}
	if b.Elapsed == "" {
		b.Elapsed = def.Elapsed
	}
	if b.Done == "" {
		b.Done = def.Done
	}
}

// Validate ensures the bridge can be invoked as a single unquoted word per
// part.
func (b BridgeBlock) Validate() error {
	for _, part := range []string{b.Path, b.EnvironmentFlag, b.UserFlag, b.DirFlag} {
		if part == "" || strings.ContainsAny(part, " \t\r\n") {
			return ErrInvalidBridge
		}
	}
	return nil
}

// Validate ensures the configuration can guide the runner.
func (c Config) Validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return ErrInvalidLogLevel
	}
	if err := c.Bridge.Validate(); err != nil {
		return err
	}
	return nil
}

// BridgeCommand converts the bridge block for the command line builder.
func (c Config) BridgeCommand() cmdline.Bridge {
	return cmdline.Bridge{
		Path:            c.Bridge.Path,
		EnvironmentFlag: c.Bridge.EnvironmentFlag,
		UserFlag:        c.Bridge.UserFlag,
		DirFlag:         c.Bridge.DirFlag,
	}
}

// StatusCaptions converts the captions block for the status renderer.
func (c Config) StatusCaptions() status.Captions {
	return status.Captions{
		ExitCode: c.Captions.ExitCode,
		Elapsed:  c.Captions.Elapsed,
		Done:     c.Captions.Done,
	}
}

// PathNextTo returns the configuration path in the directory of executable.
func PathNextTo(executable string) string {
	return filepath.Join(filepath.Dir(executable), FileName)
}

// Load reads configuration from disk. Missing files return a default config.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, err
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Save writes configuration to disk, creating parent directories as needed.
// The file is replaced atomically so a concurrent runner never reads half of it.
func Save(path string, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}

	return atomic.WriteFile(path, bytes.NewReader(data))
}

// WriteDefault saves the built-in configuration to path. An existing file is
// left untouched and reported as ErrExists.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s: %w", path, ErrExists)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return Save(path, Default())
}
