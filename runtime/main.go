package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"Seascape/internal/config"
	"Seascape/internal/engine"
	"Seascape/internal/logger"
	"Seascape/internal/renderer"

	"go.uber.org/zap"
)

func main() {
	runtime.LockOSThread()

	configPath := flag.String("config", "", "Path to config.yaml (empty = embedded defaults)")
	width := flag.Int("width", 0, "Window width override")
	height := flag.Int("height", 0, "Window height override")
	wireframe := flag.Bool("wireframe", false, "Render in wireframe")
	flag.Parse()

	cfg, warnings, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "seascape: %v\n", err)
		os.Exit(1)
	}

	logger.Init()
	for _, warning := range warnings {
		logger.Log.Warn(warning)
	}

	if *width > 0 {
		cfg.Window.Width = *width
	}
	if *height > 0 {
		cfg.Window.Height = *height
	}
	renderer.Debug = *wireframe

	ocean := engine.NewOcean(cfg)
	if err := ocean.Run(); err != nil {
		logger.Log.Error("Seascape exited", zap.Error(err))
		os.Exit(1)
	}
}
