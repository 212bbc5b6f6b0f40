package main

import (
	"flag"
	"os"
	"time"

	"github.com/soocke/yolo-annotator/app"
	"github.com/soocke/yolo-annotator/config"
	"github.com/soocke/yolo-annotator/debug"
)

func main() {
	cfgPath := flag.String("config", "annotator.json", "path to the JSON config file")
	debugFlag := flag.Bool("debug", false, "log runtime memory and goroutine statistics")
	flag.Parse()

	cfg, cfgErr := config.Load(*cfgPath)
	if *debugFlag {
		cfg.Debug = true
	}

	logger := NewLogger(os.Stderr, cfg.LogLevel)
	if cfgErr != nil {
		logger.Warn().Err(cfgErr).Str("path", *cfgPath).Msg("config unreadable, using defaults")
	}

	if cfg.Debug {
		interval := time.Duration(cfg.DebugIntervalSeconds) * time.Second
		debug.StartMemLogger(interval, logger)
		debug.StartGoroutineLogger(interval, logger)
	}

	application, err := app.NewApp("YOLO Annotator", cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("startup failed")
	}
	application.Start()
}
