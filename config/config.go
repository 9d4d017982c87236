// Package config loads the server and desktop settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/BurntSushi/toml"
)

// ErrInvalid is wrapped by every error returned from Validate.
var ErrInvalid = errors.New("invalid configuration")

// smallest stage that fits two paddles and the ball with room to move
const (
	minWidth  = 60
	minHeight = 60
)

// Config is the complete set of settings. Field names match the TOML keys.
type Config struct {
	// address the HTTP server listens on
	Addr string `toml:"addr"`

	// stage size in units
	Width  int `toml:"width"`
	Height int `toml:"height"`

	// period of one tick of a websocket session
	TickInterval Duration `toml:"tick_interval"`

	// ticks run per rendered frame by the desktop front-end
	TicksPerFrame int `toml:"ticks_per_frame"`

	// frames buffered per websocket client before frames are dropped
	SendQueue int `toml:"send_queue"`

	// concurrent websocket sessions; zero means no limit
	MaxSessions int `toml:"max_sessions"`

	BallHSpeed int `toml:"ball_h_speed"`
	BallVSpeed int `toml:"ball_v_speed"`
}

// Duration is a time.Duration written as a string in the TOML file, eg. "4ms".
type Duration struct {
	time.Duration
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements the encoding.TextMarshaler interface.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Addr:          ":8080",
		Width:         400,
		Height:        300,
		TickInterval:  Duration{4 * time.Millisecond},
		TicksPerFrame: 4,
		SendQueue:     100,
		MaxSessions:   0,
		BallHSpeed:    2,
		BallVSpeed:    2,
	}
}

// Load reads path over the defaults. A missing file is not an error. An empty
// path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("config: %w: unknown key %q", ErrInvalid, undecoded[0].String())
	}

	return cfg, cfg.Validate()
}

// Validate checks that the settings can be used.
func (c Config) Validate() error {
	if c.Width < minWidth || c.Height < minHeight {
		return fmt.Errorf("config: %w: stage %dx%d is smaller than %dx%d", ErrInvalid, c.Width, c.Height, minWidth, minHeight)
	}
	if c.TickInterval.Duration <= 0 {
		return fmt.Errorf("config: %w: tick_interval must be positive", ErrInvalid)
	}
	if c.TicksPerFrame <= 0 {
		return fmt.Errorf("config: %w: ticks_per_frame must be positive", ErrInvalid)
	}
	if c.SendQueue <= 0 {
		return fmt.Errorf("config: %w: send_queue must be positive", ErrInvalid)
	}
	if c.MaxSessions < 0 {
		return fmt.Errorf("config: %w: max_sessions cannot be negative", ErrInvalid)
	}
	if c.BallHSpeed == 0 {
		return fmt.Errorf("config: %w: ball_h_speed cannot be zero", ErrInvalid)
	}
	return nil
}
