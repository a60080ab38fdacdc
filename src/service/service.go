package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/asadas-tsadiglo/tank-telemetry/src/api"
	"github.com/asadas-tsadiglo/tank-telemetry/src/control"
	"github.com/asadas-tsadiglo/tank-telemetry/src/refresh"
	"github.com/asadas-tsadiglo/tank-telemetry/src/simulation"
	"github.com/asadas-tsadiglo/tank-telemetry/src/storage"
)

type Config struct {
	Port string `default:"8080"`

	PostgresHost     string `default:"0.0.0.0"`
	PostgresPort     string `default:"5432"`
	PostgresUser     string `default:"postgres"`
	PostgresPassword string
	PostgresName     string `default:"asadas"`
	RedisAddress     string `default:"0.0.0.0:6379"`

	RefreshIntervalSeconds int `default:"30"`
	ErrorBackoffSeconds    int `default:"5"`

	LogLevel string `default:"info"`
}

// Service owns the full pipeline: simulation engine, control state, refresh
// loop, storage and the HTTP API.
type Service struct {
	config    *Config
	store     *storage.Storage
	refresher *refresh.Refresher
	apiServer *api.Server
}

func NewService(config *Config) (*Service, error) {
	store, err := storage.NewStorage(
		storage.WithDbHost(config.PostgresHost),
		storage.WithDbPort(config.PostgresPort),
		storage.WithDbUser(config.PostgresUser),
		storage.WithDbPassword(config.PostgresPassword),
		storage.WithDbName(config.PostgresName),
		storage.WithRedisAddress(config.RedisAddress),
	)
	if err != nil {
		return nil, err
	}

	engine := simulation.New()
	controls := control.NewState()

	refresher := refresh.New(engine, controls, store,
		refresh.WithInterval(time.Duration(config.RefreshIntervalSeconds)*time.Second),
		refresh.WithBackoff(time.Duration(config.ErrorBackoffSeconds)*time.Second),
	)

	return &Service{
		config:    config,
		store:     store,
		refresher: refresher,
		apiServer: api.DefaultApiServer(store, controls, engine),
	}, nil
}

// Start runs the refresh loop and the HTTP server until ctx is done, then
// shuts both down and closes the storage connections.
func (s *Service) Start(ctx context.Context) error {
	go s.refresher.Run(ctx)

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.apiServer.Run(":" + s.config.Port)
	}()

	logrus.WithField("port", s.config.Port).Info("tank telemetry service started")

	var err error
	select {
	case <-ctx.Done():
		err = s.apiServer.Shutdown()
	case err = <-serveErr:
	}

	if closeErr := s.store.Close(); closeErr != nil {
		logrus.WithError(closeErr).Warn("closing storage failed")
	}

	return err
}
