// internal/config/runtime.go
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Runtime — настройки, которые берутся из окружения при запуске.
type Runtime struct {
	DBPath     string `env:"REEF_DB_PATH" envDefault:"reef.db"`
	Seed       int64  `env:"REEF_SEED" envDefault:"0"`
	LogLevel   string `env:"REEF_LOG_LEVEL" envDefault:"info"`
	LogPretty  bool   `env:"REEF_LOG_PRETTY" envDefault:"true"`
	Content    string `env:"REEF_CONTENT"`
	StartScene string `env:"REEF_START_SCENE" envDefault:"menu"`
	PprofAddr  string `env:"REEF_PPROF_ADDR" envDefault:"localhost:6060"`
	Audio      bool   `env:"REEF_AUDIO" envDefault:"true"`
	Character  string `env:"REEF_CHARACTER" envDefault:"diver"`
}

// ParseEnv parses environment variables into the provided struct.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadRuntime читает Runtime из окружения.
func LoadRuntime() (Runtime, error) {
	var rt Runtime
	if err := ParseEnv(&rt); err != nil {
		return Runtime{}, err
	}
	switch rt.StartScene {
	case "menu", "game", "shop":
	default:
		return Runtime{}, fmt.Errorf("unknown start scene %q", rt.StartScene)
	}
	return rt, nil
}
