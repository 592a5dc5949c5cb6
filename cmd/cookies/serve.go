package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/jaminalder/cookies-and-milk/internal/app"
	"github.com/jaminalder/cookies-and-milk/internal/logging"
	"github.com/jaminalder/cookies-and-milk/internal/metrics"
	"github.com/jaminalder/cookies-and-milk/internal/randutil"
	"github.com/jaminalder/cookies-and-milk/internal/web"
)

// ServeCmd runs the HTTP server.
type ServeCmd struct {
	Addr string `default:":8000" env:"ADDR" help:"Listen address"`
	Seed uint64 `default:"2024" env:"SEED" hidden:"" help:"Generator seed for random boards"`
}

func (c *ServeCmd) Run(cli *CLI) error {
	logger, err := logging.New(cli.LogLevel, cli.LogFormat)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	opts := []app.Option{
		app.WithLogger(logger),
		app.WithObserver(metrics.New(reg)),
	}
	if c.Seed != randutil.GameSeed {
		logger.Warn().Uint64("seed", c.Seed).Msg("using non-default seed")
		opts = append(opts, app.WithSeed(c.Seed))
	}
	svc := app.NewService(opts...)
	srv := web.NewServer(svc, web.WithLogger(logger), web.WithMetrics(reg))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Start(c.Addr)
	}()

	select {
	case <-ctx.Done():
		logger.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-serverErr:
		return err
	}
}
