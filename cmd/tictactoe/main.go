package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v3"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/AlejandroGuerraJimenez/TicTacToe-Backend/internal/config"
	"github.com/AlejandroGuerraJimenez/TicTacToe-Backend/internal/database"
	"github.com/AlejandroGuerraJimenez/TicTacToe-Backend/internal/logging"
	"github.com/AlejandroGuerraJimenez/TicTacToe-Backend/internal/server"
	"github.com/AlejandroGuerraJimenez/TicTacToe-Backend/internal/wire"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cmd := &cli.Command{
		Name:  "tictactoe",
		Usage: "TicTacToe social backend",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:  "env-file",
				Usage: "env files to load before reading the environment",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the HTTP and websocket server",
				Action: serve,
			},
			{
				Name:   "migrate",
				Usage:  "create or update the database schema and exit",
				Action: migrate,
			},
		},
		Action: serve,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setup(cmd *cli.Command) (*config.Config, *slog.Logger, func() error, error) {
	cfg := config.LoadConfig(cmd.StringSlice("env-file")...)
	if err := cfg.Validate(); err != nil {
		return nil, nil, nil, err
	}
	log, closeLog, err := logging.New(cfg.Logging)
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, log, closeLog, nil
}

func migrate(ctx context.Context, cmd *cli.Command) error {
	cfg, log, closeLog, err := setup(cmd)
	if err != nil {
		return err
	}
	defer closeLog()

	db, err := database.Open(cfg, log)
	if err != nil {
		return err
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		return err
	}
	log.Info("schema migrated")
	return nil
}

func serve(ctx context.Context, cmd *cli.Command) error {
	cfg, log, closeLog, err := setup(cmd)
	if err != nil {
		return err
	}
	defer closeLog()

	app, cleanup, err := wire.InitializeApplication(cfg, log)
	if err != nil {
		return fmt.Errorf("initialize application: %w", err)
	}
	defer cleanup()

	if err := database.Migrate(app.DB); err != nil {
		return err
	}

	srv := server.NewHTTPServer(cfg, app.Router)
	errCh := make(chan error, 2)
	go func() {
		log.Info("http server listening", "addr", srv.Addr, "env", cfg.Server.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	var grpcServer *grpc.Server
	if cfg.Server.GRPCPort != "" {
		grpcServer, err = startHealthServer(cfg.Server.GRPCPort, log, errCh)
		if err != nil {
			return err
		}
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case sig := <-quit:
		log.Info("shutting down", "signal", sig.String())
	case err := <-errCh:
		log.Error("server failed", "error", err)
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	// hijacked websocket connections are not tracked by http.Server
	app.Registry.CloseAll()
	if grpcServer != nil {
		grpcServer.GracefulStop()
	}
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	log.Info("server exited")
	return nil
}

// startHealthServer exposes grpc.health.v1 so orchestrators can probe the
// process without going through the REST surface.
func startHealthServer(port string, log *slog.Logger, errCh chan<- error) (*grpc.Server, error) {
	lis, err := net.Listen("tcp", ":"+port)
	if err != nil {
		return nil, fmt.Errorf("listen on grpc port %s: %w", port, err)
	}

	gs := grpc.NewServer()
	healthServer := health.NewServer()
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	grpc_health_v1.RegisterHealthServer(gs, healthServer)
	reflection.Register(gs)

	go func() {
		log.Info("grpc health listening", "port", port)
		if err := gs.Serve(lis); err != nil {
			errCh <- fmt.Errorf("grpc server: %w", err)
		}
	}()
	return gs, nil
}
