package app

import (
	"github.com/sourcegraph/conc"

	"github.com/radik097/ClipboardGPT/internal/application/chat"
	"github.com/radik097/ClipboardGPT/internal/infrastructure/attach"
	"github.com/radik097/ClipboardGPT/internal/infrastructure/clipboard"
	"github.com/radik097/ClipboardGPT/internal/infrastructure/notify"
	"github.com/radik097/ClipboardGPT/internal/infrastructure/openai"
	"github.com/radik097/ClipboardGPT/internal/infrastructure/settings"
	"github.com/radik097/ClipboardGPT/internal/infrastructure/store"
	"github.com/radik097/ClipboardGPT/internal/infrastructure/tokens"
	"github.com/radik097/ClipboardGPT/internal/pkg/logger"
	"github.com/radik097/ClipboardGPT/internal/ports"
)

// Container wires up application services with infrastructure adapters.
type Container struct {
	Session      *chat.Session
	Settings     settings.Settings
	ConfigStore  *store.ConfigStore
	HistoryStore ports.HistoryStore
	Clipboard    ports.Clipboard
	Logger       ports.Logger
}

// BuildContainer constructs the dependency graph. Pass an empty settingsPath
// to use the default location under the user's home directory.
func BuildContainer(settingsPath string, verbose bool) (*Container, error) {
	env, err := settings.Load(settingsPath)
	if err != nil {
		return nil, err
	}

	log := logger.NewStd(verbose)
	wg := conc.NewWaitGroup()

	configStore := store.NewConfigStore()
	var historyStore ports.HistoryStore
	if env.HistoryBackend == "sqlite" {
		historyStore = store.NewSQLiteHistoryStore()
	} else {
		historyStore = store.NewHistoryStore()
	}

	var notifier ports.Notifier = notify.Noop{}
	if env.Notifications {
		notifier = notify.NewDesktop(log)
	}

	client := openai.NewClient(env.BaseURL, env.APIKey, log)
	chooser := openai.NewChooser(env.BaseURL, env.APIKey)
	clip := clipboard.New()

	session := chat.NewSession(chat.Deps{
		Requester:          chat.NewRequester(client, log, wg),
		Picker:             chat.NewPicker(chooser, log, wg),
		Estimator:          tokens.New(),
		ConfigStore:        configStore,
		HistoryStore:       historyStore,
		Clipboard:          clip,
		Notifier:           notifier,
		Logger:             log,
		ReadAttachment:     attach.Read,
		DefaultTemperature: env.Temperature,
		DefaultTimeout:     env.TimeoutSeconds,
	}, wg)

	return &Container{
		Session:      session,
		Settings:     env,
		ConfigStore:  configStore,
		HistoryStore: historyStore,
		Clipboard:    clip,
		Logger:       log,
	}, nil
}

// Close releases the session's background workers.
func (c *Container) Close() {
	c.Session.Close()
}
