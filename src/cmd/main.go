package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/koding/multiconfig"
	"github.com/sirupsen/logrus"

	"github.com/asadas-tsadiglo/tank-telemetry/src/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGQUIT, syscall.SIGTERM)
	defer stop()

	err := run(ctx)
	if err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	config := &service.Config{}
	err := multiconfig.New().Load(config)
	if err != nil {
		return err
	}

	lvl, err := logrus.ParseLevel(config.LogLevel)
	if err != nil {
		return fmt.Errorf("error setting logrus loglevel: %w", err)
	}
	logrus.SetLevel(lvl)

	svc, err := service.NewService(config)
	if err != nil {
		return err
	}

	return svc.Start(ctx)
}
