package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/kiryu-dev/connect-four/internal/config"
	"github.com/kiryu-dev/connect-four/internal/domain"
	"github.com/kiryu-dev/connect-four/internal/transport/cli"
	"github.com/kiryu-dev/connect-four/internal/usecase/game"
	"github.com/kiryu-dev/connect-four/internal/usecase/hub"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	bootLogger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	cfgPath := flag.String("config", "./config.yml", "path to config")
	flag.Parse()
	cfg, err := config.New(*cfgPath)
	if err != nil {
		bootLogger.Fatal(err.Error())
	}
	logger, err := cfg.Logger()
	if err != nil {
		bootLogger.Fatal(err.Error())
	}
	_ = bootLogger.Sync()
	defer func() {
		_ = logger.Sync()
	}()
	players := domain.Players{
		domain.Player1: domain.NewPlayer(domain.Player1, cfg.Player1.Name, cfg.Player1.Symbol),
		domain.Player2: domain.NewPlayer(domain.Player2, cfg.Player2.Name, cfg.Player2.Symbol),
	}
	renderer, err := cli.NewRenderer(string(cfg.Output), os.Stdout, players)
	if err != nil {
		logger.Fatal(err.Error())
	}
	var (
		game    = game.New(logger)
		hub     = hub.New(game, logger)
		session = cli.New(hub, renderer, players, os.Stdin, logger)
	)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigChan := make(chan os.Signal, 2)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	errGroup, ctx := errgroup.WithContext(ctx)
	errGroup.Go(func() error {
		select {
		case s := <-sigChan:
			return errors.Errorf("captured signal: %v", s)
		case <-ctx.Done():
			return nil
		}
	})
	errGroup.Go(func() error {
		defer cancel()
		if err := session.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return errors.WithMessage(err, "run session")
		}
		return nil
	})
	if err := errGroup.Wait(); err != nil {
		logger.Info("gracefully shutting down: " + err.Error())
	}
	logger.Info("session finished", zap.Any("score", hub.Score()))
}
