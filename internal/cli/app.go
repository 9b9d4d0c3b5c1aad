// Package cli is the interactive shell around the translation core: a small
// REPL that drives the orchestrator, the broadcast coordinator and the sync
// queue.
package cli

import (
	"bufio"
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/mindful-ai-dude/multilingo/internal/audio"
	"github.com/mindful-ai-dude/multilingo/internal/auth"
	"github.com/mindful-ai-dude/multilingo/internal/config"
	"github.com/mindful-ai-dude/multilingo/internal/localstore"
	"github.com/mindful-ai-dude/multilingo/internal/logging"
	"github.com/mindful-ai-dude/multilingo/internal/models"
	"github.com/mindful-ai-dude/multilingo/internal/netx"
	"github.com/mindful-ai-dude/multilingo/internal/oracle"
	"github.com/mindful-ai-dude/multilingo/internal/remote"
	"github.com/mindful-ai-dude/multilingo/internal/services"
)

// tokenTTL bounds the device identity token minted at startup.
const tokenTTL = 30 * 24 * time.Hour

type App struct {
	config      *config.Config
	log         logging.Logger
	store       *localstore.Store
	remote      remote.Store
	prober      netx.Prober
	translator  *services.Translator
	broadcaster *services.Broadcaster
	syncer      *services.Syncer
	audioLib    *audio.Library
	deviceID    string

	Mode   models.Mode
	reader *bufio.Reader
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	store, err := localstore.Open(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, err
	}

	deviceID := c.DeviceID
	if deviceID == "" {
		deviceID = uuid.NewString()
	}

	var remoteStore remote.Store
	if c.RemoteEndpointAddr != "" {
		token, err := auth.GenerateToken(deviceID, c.TokenSecret, tokenTTL)
		if err != nil {
			_ = store.Close()
			return nil, err
		}
		remoteStore = remote.NewHTTPStore(c.RemoteEndpointAddr, token)
	} else {
		// no endpoint configured: serve the contract in-process
		remoteStore = remote.NewSeededMemoryStore()
	}

	app := &App{
		config:   c,
		log:      log,
		store:    store,
		remote:   remoteStore,
		prober:   netx.NewHTTPProber(c.ProbeURL),
		deviceID: deviceID,
		Mode:     models.ModeOffline,
		reader:   bufio.NewReader(os.Stdin),
	}
	app.wireServices()
	return app, nil
}

// wireServices (re)builds the services that depend on the oracle. Called at
// startup and again when the user configures a new API key.
func (a *App) wireServices() {
	orc := oracle.NewGemini(a.config.GeminiAPIKey)
	a.audioLib = audio.NewLibrary(a.config.S3)

	a.translator = services.NewTranslator(a.remote, orc, a.prober, a.store.History, a.store.Queue, a.log)
	a.broadcaster = services.NewBroadcaster(a.translator, a.remote, a.store.Queue, a.audioLib, a.log)
	a.syncer = services.NewSyncer(a.store.Queue, a.remote, a.prober, a.log)
}

func (a *App) setMode(mode models.Mode) {
	if a.Mode != mode {
		a.Mode = mode
		printlnFn("Switched to " + string(mode) + " mode")
	}
}

// Run starts the background workers and the REPL, and owns the store
// lifecycle.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer func() { _ = a.store.Close() }()

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)
	a.syncer.Start(ctx, a.config.SyncInterval)
	a.broadcaster.StartExpirySweeper(ctx, a.config.SweepInterval)

	a.Root(ctx)
}

// StartOnlineStatusWatcher probes connectivity on a fixed interval and flips
// the displayed mode.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if a.prober.Online(ctx) {
				a.setMode(models.ModeOnline)
			} else {
				a.setMode(models.ModeOffline)
			}
		case <-ctx.Done():
			return
		}
	}
}
