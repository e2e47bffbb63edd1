package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/nhdewitt/http-router/internal/config"
	"github.com/nhdewitt/http-router/internal/handler"
	"github.com/nhdewitt/http-router/internal/logs"
	"github.com/nhdewitt/http-router/internal/router"
	"github.com/nhdewitt/http-router/internal/server"
)

func newRouter(conf *config.Config, logger *zap.Logger) (*router.Router, error) {
	pages := handler.NewPages(conf.Static.PublicPath, logger)
	r := router.New(router.HandlerFunc(pages.NotFound))

	if err := handler.RegisterStatic(r, pages); err != nil {
		return nil, fmt.Errorf("register static pages: %w", err)
	}
	if err := handler.NewOrders(conf.Static.DataPath, logger).Mount(r.Group("api")); err != nil {
		return nil, fmt.Errorf("register orders: %w", err)
	}
	if err := r.Post("/echo", handler.Echo); err != nil {
		return nil, fmt.Errorf("register echo: %w", err)
	}
	return r, nil
}

func main() {
	cfgPath := pflag.StringP("config", "c", "", "path to config file (default: configs/conf.yml searched upward)")
	addr := pflag.String("addr", "", "listen address, overrides server.addr")
	pflag.Parse()

	conf, loader, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	if *addr != "" {
		conf.Server.Addr = *addr
	}

	logger, level := logs.New("httpserver", conf.Log)
	defer func() { _ = logger.Sync() }()
	logger.Info("conf", zap.String("file", loader.File()), zap.Any("conf", conf))

	loader.Watch(func(c config.Config, err error) {
		if err != nil {
			logger.Error("reload config failed", zap.Error(err))
			return
		}
		level.SetLevel(logs.ParseLevel(c.Log.Level))
		logger.Info("config reloaded", zap.String("level", level.String()))
	})

	r, err := newRouter(conf, logger)
	if err != nil {
		logger.Fatal("build routes failed", zap.Error(err))
	}

	srv, err := server.Serve(server.Config{
		Addr:            conf.Server.Addr,
		MaxConnections:  conf.Server.MaxConnections,
		MaxRequestBytes: conf.Server.MaxRequestBytes,
		ReadTimeout:     conf.Server.ReadTimeout,
		WriteTimeout:    conf.Server.WriteTimeout,
	}, r, logger)
	if err != nil {
		logger.Fatal("start server failed", zap.Error(err))
	}
	logger.Info("server started", zap.String("addr", srv.Addr().String()))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("shutdown incomplete", zap.Error(err))
	}
	logger.Info("server gracefully stopped")
}
