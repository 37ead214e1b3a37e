package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/reusedev/wp-hub/config"
	"github.com/reusedev/wp-hub/internal/modules/imagehost"
	"github.com/reusedev/wp-hub/internal/modules/integrate"
	"github.com/reusedev/wp-hub/internal/modules/logs"
	"github.com/reusedev/wp-hub/internal/modules/wordpress"
	"github.com/reusedev/wp-hub/internal/service/http"
	"github.com/reusedev/wp-hub/internal/service/http/handler"
)

var (
	httpPort   string
	configPath string
)

func init() {
	flag.StringVar(&httpPort, "http-port", ":8000", "listen http port")
	flag.StringVar(&configPath, "config", "config.yml", "config file path")
}

func main() {
	flag.Parse()
	config.Init(configPath)
	logs.InitLogger()
	cfg := config.GConfig

	uploader, err := imagehost.New(cfg)
	if err != nil {
		logs.Logger.Fatal().Err(err).Msg("init image host")
	}
	strategy, err := integrate.StrategyByName(cfg.Placement.Strategy)
	if err != nil {
		logs.Logger.Fatal().Err(err).Msg("init placement strategy")
	}
	integrator := integrate.New(uploader, strategy, cfg.ConcurrentUpload())
	logs.Logger.Info().
		Str("image_host", cfg.ImageHost.Provider).
		Str("strategy", integrator.Strategy().Name().String()).
		Bool("concurrent_upload", cfg.ConcurrentUpload()).
		Msg("wp-hub starting")

	h := handler.New(wordpress.NewClient(cfg.WordPressTimeout()), integrator)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if err = http.Serve(ctx, httpPort, h); err != nil {
		logs.Logger.Error().Err(err).Msg("http server stopped")
		os.Exit(1)
	}
}
