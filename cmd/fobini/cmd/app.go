package cmd

import (
	"fmt"
	"log/slog"
	"os"

	fobini "github.com/fobiniyen/fobini-go"
	"github.com/fobiniyen/fobini-go/internal/config"
	"github.com/fobiniyen/fobini-go/keystore"
)

// app bundles the wired services used by the CLI commands.
type app struct {
	cfg      *config.Config
	logger   *slog.Logger
	store    *keystore.Store
	sessions *fobini.SessionManager
	client   *fobini.Client
	auth     *fobini.AuthService
	phobias  *fobini.PhobiaService
	therapy  *fobini.TherapyService
	chat     *fobini.ChatService
	users    *fobini.UserService
}

// newApp loads configuration, opens the keystore, and wires the client and
// services. Commands call this once at the start of their Run function.
func newApp() (*app, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	logger := newLogger(cfg.LogLevel)

	opts := []keystore.Option{keystore.WithLogger(logger)}
	if cfg.Keystore.Passphrase != "" {
		opts = append(opts, keystore.WithPassphrase(cfg.Keystore.Passphrase))
	}
	store, err := keystore.Open(cfg.Keystore.Path, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to open keystore: %w", err)
	}

	sessions := fobini.NewSessionManager(store, logger)
	client := fobini.NewClient(
		fobini.WithBaseURL(cfg.API.BaseURL),
		fobini.WithTimeout(cfg.API.Timeout),
		fobini.WithSession(sessions),
		fobini.WithLogger(logger),
	)

	return &app{
		cfg:      cfg,
		logger:   logger,
		store:    store,
		sessions: sessions,
		client:   client,
		auth:     fobini.NewAuthService(client, sessions),
		phobias:  fobini.NewPhobiaService(client),
		therapy:  fobini.NewTherapyService(client),
		chat:     fobini.NewChatService(client),
		users:    fobini.NewUserService(client, sessions),
	}, nil
}

// newLogger builds a text slog logger at the configured level.
func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

// fail prints the error and exits. API errors carry user-facing messages
// (validation failures surface the server's own text).
func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
