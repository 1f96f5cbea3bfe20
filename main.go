package main

import (
	"flag"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"dp-effects/config"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	backend := flag.String("backend", "window", "Host to run in: window, terminal or headless")
	seed := flag.Uint64("seed", 0, "RNG seed (0 = time-based)")
	logFormat := flag.String("log-format", "text", "Log format: text or json")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn or error")
	logFile := flag.String("log-file", "", "Write logs to this file (terminal backend discards logs otherwise)")
	maxFrames := flag.Int("max-frames", 0, "Stop after N frames (0 = unlimited, headless defaults to 600)")
	flag.Parse()

	var out io.Writer = os.Stderr
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			slog.Error("failed to open log file", "path", *logFile, "error", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	} else if *backend == "terminal" {
		// The terminal owns stderr's screen
		out = io.Discard
	}
	logger := newLogger(out, *logFormat, *logLevel)
	slog.SetDefault(logger)

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = uint64(time.Now().UnixNano())
	}

	a := newApp(cfg, rngSeed, logger)
	defer a.Close()

	slog.Info("starting", "backend", *backend, "seed", rngSeed,
		"theme", string(a.themes.Current()), "reduced_motion", a.motion.Reduced())

	switch *backend {
	case "window":
		runWindow(a, cfg, *maxFrames)
	case "terminal":
		if err := runTerminal(a, cfg, *maxFrames); err != nil {
			slog.Error("terminal backend failed", "error", err)
			os.Exit(1)
		}
	case "headless":
		runHeadless(a, cfg, *maxFrames)
	default:
		slog.Error("unknown backend", "backend", *backend)
		os.Exit(2)
	}
}

func newLogger(w io.Writer, format, level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
