package app

import (
	"github.com/go-faster/errors"
	"go.uber.org/zap"

	"squash/internal/codec"
	"squash/internal/codec/huffman"
	"squash/internal/codec/lz4"
	"squash/internal/codec/phasedin"
	"squash/internal/codec/rle"
	"squash/internal/codec/zstd"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Verbose bool // enable debug logging
}

// App bundles the codec registry and logger for the CLI.
type App struct {
	Codecs *codec.Registry
	Log    *zap.Logger
}

// New constructs the dependency graph from cfg.
func New(cfg Config) (*App, error) {
	log := zap.NewNop()
	if cfg.Verbose {
		var err error
		if log, err = zap.NewDevelopment(); err != nil {
			return nil, errors.Wrap(err, "logger")
		}
	}

	reg, err := NewRegistry()
	if err != nil {
		return nil, err
	}
	return &App{Codecs: reg, Log: log}, nil
}

// NewRegistry returns a registry with every built-in codec.
func NewRegistry() (*codec.Registry, error) {
	reg := codec.NewRegistry()
	builtins := map[string]codec.Factory{
		"raw": func(codec.Params) (codec.Codec, error) {
			return codec.Raw{}, nil
		},
		"rle": func(codec.Params) (codec.Codec, error) {
			return rle.Coder{}, nil
		},
		"huffman": func(codec.Params) (codec.Codec, error) {
			return huffman.Coder{}, nil
		},
		"phasedin": func(p codec.Params) (codec.Codec, error) {
			n := p.Symbols
			if n == 0 {
				n = 256
			}
			return phasedin.New(n)
		},
		"lz4": func(p codec.Params) (codec.Codec, error) {
			return lz4.New(p.Level)
		},
		"zstd": func(p codec.Params) (codec.Codec, error) {
			return zstd.New(p.Level)
		},
	}
	for name, f := range builtins {
		if err := reg.Register(name, f); err != nil {
			return nil, err
		}
	}
	return reg, nil
}
