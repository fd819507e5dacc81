package main

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/registry"
)

// configSetter is implemented by games that read match3.yaml.
type configSetter interface {
	SetConfig(cfg config.Match3Config)
}

// loadConfig loads match3.yaml from --config or the default search path.
func loadConfig() (config.Match3Config, error) {
	return config.LoadMatch3(flagConfig)
}

// preparer returns a hook that hands cfg to every game that wants it.
func preparer(cfg config.Match3Config) func(registry.Game) {
	return func(g registry.Game) {
		if s, ok := g.(configSetter); ok {
			s.SetConfig(cfg)
		}
	}
}

// runtimeConfig sizes the screen from the terminal, falling back to 80x24.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// seed returns --seed, or a time-based seed when it is unset.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

func newLogger(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
}
