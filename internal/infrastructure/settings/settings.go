// Package settings resolves endpoint credentials and runtime defaults.
// Resolution order per field: explicit value in settings.yaml, then
// environment, then provider default.
package settings

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/radik097/ClipboardGPT/internal/pkg/filesystem"
)

// Settings holds everything sourced outside the config/history documents.
// The API key may be empty, meaning "use provider default" (no auth header).
type Settings struct {
	APIKey         string  `yaml:"api_key" env:"OPENAI_API_KEY"`
	BaseURL        string  `yaml:"base_url" env:"OPENAI_BASE_URL"`
	Model          string  `yaml:"model" env:"OPENAI_MODEL"`
	Temperature    float32 `yaml:"temperature" env:"CLIPGPT_TEMPERATURE" env-default:"0.2"`
	TimeoutSeconds int     `yaml:"timeout_seconds" env:"OPENAI_TIMEOUT" env-default:"60"`
	HistoryBackend string  `yaml:"history_backend" env:"CLIPGPT_HISTORY_BACKEND" env-default:"json"`
	Notifications  bool    `yaml:"notifications" env:"CLIPGPT_NOTIFY" env-default:"true"`
}

// Load reads settings.yaml (when present) and overlays the environment.
// A missing file is fine; a malformed one is an error.
func Load(path string) (Settings, error) {
	if path == "" {
		path = filepath.Join(filesystem.UserHomeDir(), ".clipboardgpt", "settings.yaml")
	}

	var s Settings
	if err := cleanenv.ReadConfig(path, &s); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return Settings{}, err
		}
		if err := cleanenv.ReadEnv(&s); err != nil {
			return Settings{}, err
		}
	}

	// the older variable name some launchers still set
	if s.BaseURL == "" {
		s.BaseURL = os.Getenv("OPENAI_API_BASE")
	}
	return s, nil
}
