package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	"github.com/tbeaudouin05/packchange/api/bootstrap"
	"github.com/tbeaudouin05/packchange/api/config"
	"github.com/tbeaudouin05/packchange/api/database"
	"github.com/tbeaudouin05/packchange/api/router"
	grpcserver "github.com/tbeaudouin05/packchange/api/services/packs/grpc"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})))

	if err := bootstrap.Ensure(); err != nil {
		slog.Error("bootstrap failed", "err", err)
		os.Exit(1)
	}
	defer database.Close()
	cfg := config.AppConfig

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	packServer := grpcserver.New(bootstrap.GetPackService(), bootstrap.GetSessionVerifier())
	grpcSrv := grpc.NewServer()
	grpcserver.RegisterPackServiceServer(grpcSrv, packServer)

	// No write timeout: the notification stream is long-lived and pack changes wait on the backend.
	httpSrv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router.NewRouter(packServer),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		lis, err := net.Listen("tcp", ":"+cfg.GRPCPort)
		if err != nil {
			return err
		}
		slog.Info("grpc server listening", "port", cfg.GRPCPort)
		return grpcSrv.Serve(lis)
	})
	g.Go(func() error {
		slog.Info("http server listening", "port", cfg.HTTPPort)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		grpcSrv.GracefulStop()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			slog.Warn("http shutdown failed", "err", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		slog.Error("server stopped", "err", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
