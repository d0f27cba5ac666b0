package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/samber/lo"
	"github.com/wheelibin/lightify/internal/api"
	bridgepoller "github.com/wheelibin/lightify/internal/bridgePoller"
	"github.com/wheelibin/lightify/internal/config"
	"github.com/wheelibin/lightify/internal/hub"
	"github.com/wheelibin/lightify/internal/lightify"
	"github.com/wheelibin/lightify/internal/lights"
	"github.com/wheelibin/lightify/internal/models"
	"github.com/wheelibin/lightify/internal/repos"
	"gopkg.in/natefinch/lumberjack.v2"
)

func main() {

	configFile := flag.String("config", "", "path to the config file")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:           log.InfoLevel,
		ReportTimestamp: true,
		ReportCaller:    true,
	})

	// read the config file
	cfg, err := config.InitialiseConfig(*configFile)
	if err != nil {
		logger.Fatal(err)
	}

	logger.SetLevel(cfg.LogLevel())
	if cfg.Log.File != "" {
		logger.SetOutput(&lumberjack.Logger{
			Filename: cfg.Log.File,
			MaxAge:   3,
		})
	}
	logger.Info("lightifyd starting")

	// create/wire up services
	db, err := repos.OpenDB(cfg.DB.Path)
	if err != nil {
		logger.Fatal(err)
	}
	defer db.Close()

	lightRepo, err := repos.NewLightRepo(logger, db)
	if err != nil {
		logger.Fatal(err)
	}

	h := hub.NewHub(logger, cfg.PollInterval, lightRepo)
	server := api.NewServer(logger, h, lightRepo)
	h.AddPublisher(server)

	var bridge *lightify.Bridge
	connect := func(host string) (bridgepoller.Bridge, error) {
		b, err := lightify.Dial(host,
			lightify.WithPort(cfg.Port),
			lightify.WithTimeout(cfg.Timeout),
			lightify.WithLogger(logger),
		)
		if err != nil {
			return nil, err
		}
		bridge = b
		return b, nil
	}
	addLights := func(newLights []*lights.LightifyLight) {
		h.AddEntities(lo.Map(newLights, func(l *lights.LightifyLight, _ int) models.LightEntity { return l }))
	}

	if _, err := bridgepoller.Setup(logger, cfg.Host, connect, addLights); err != nil {
		if bridge != nil {
			bridge.Close()
		}
		logger.Fatal("lightifyd setup failed", "err", err)
	}
	defer bridge.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := server.ListenAndServe(ctx, cfg.API.Listen); err != nil {
			logger.Error(err)
			stop()
		}
	}()

	// start the light update loop
	h.Run(ctx)

	logger.Info("lightifyd is closing")
}
