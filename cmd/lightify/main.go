package main

import (
	"flag"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	sse "github.com/r3labs/sse/v2"
	"github.com/wheelibin/lightify/internal/api"
	"github.com/wheelibin/lightify/internal/config"
	"github.com/wheelibin/lightify/internal/tui"
	"gopkg.in/natefinch/lumberjack.v2"
)

func main() {

	configFile := flag.String("config", "", "path to the config file")
	flag.Parse()

	logFile := &lumberjack.Logger{
		Filename: "logs/lightify.log",
		MaxAge:   3,
	}
	logger := log.NewWithOptions(logFile, log.Options{
		Level:      log.InfoLevel,
		TimeFormat: "2006/01/02 15:04:05",
	})
	logger.Info("lightify starting")

	// read the config file
	cfg, err := config.InitialiseConfig(*configFile)
	if err != nil {
		logger.Fatal(err)
	}
	logger.SetLevel(cfg.LogLevel())
	if cfg.Log.File != "" {
		logFile.Filename = cfg.Log.File
	}

	client := api.NewClient(logger, cfg.API.URL)

	// run the terminal UI
	p := tea.NewProgram(tui.NewModel(), tea.WithAltScreen())

	go func() {
		states, err := client.GetLights()
		if err != nil {
			logger.Error(err)
			return
		}
		p.Send(tui.LightsLoaded(states))

		events := make(chan *sse.Event)
		if err := client.Subscribe(events); err != nil {
			logger.Error(err)
			return
		}
		defer client.Unsubscribe()

		for ev := range events {
			state, err := api.DecodeState(ev)
			if err != nil {
				logger.Error(err)
				continue
			}
			p.Send(tui.LightUpdated(state))
		}
	}()

	if _, err := p.Run(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
	logger.Info("lightify is closing")
}
