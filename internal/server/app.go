// Package server initializes and runs the vault server. It wires the
// Postgres-backed repositories, the cipher and the services together, starts
// the HTTP endpoint and handles graceful shutdown on OS signals.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/drivenpass/internal/cryptox"
	"github.com/dmitrijs2005/drivenpass/internal/logging"
	"github.com/dmitrijs2005/drivenpass/internal/server/config"
	"github.com/dmitrijs2005/drivenpass/internal/server/credentials"
	"github.com/dmitrijs2005/drivenpass/internal/server/networks"
	"github.com/dmitrijs2005/drivenpass/internal/server/rest"
	"github.com/dmitrijs2005/drivenpass/internal/server/shared/db"
	"github.com/dmitrijs2005/drivenpass/internal/server/users"
)

type App struct {
	config            *config.Config
	logger            logging.Logger
	userService       *users.Service
	credentialService *credentials.Service
	networkService    *networks.Service
	repos             db.RepositoryManager
}

func NewApp(cfg *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	rm, err := db.NewPostgresRepositoryManager(cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	// a missing or unusable cipher secret is a boot failure, not something to
	// discover on the first create
	cipher, err := cryptox.New(cfg.CipherSecret)
	if err != nil {
		return nil, fmt.Errorf("cipher init error: %w", err)
	}

	us := users.NewService(rm.Users(), rm.Sessions(), cfg)
	cs := credentials.NewService(rm.Credentials(), cipher)
	ns := networks.NewService(rm.Networks(), cipher)

	return &App{
		config:            cfg,
		logger:            logger,
		userService:       us,
		credentialService: cs,
		networkService:    ns,
		repos:             rm,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startRESTServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := rest.NewServer(
		app.config.EndpointAddr,
		app.logger,
		app.userService,
		app.credentialService,
		app.networkService,
		app.repos.Sessions(),
		app.config.SecretKey,
	)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startRESTServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.repos.Conn().Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err)
	}
}
