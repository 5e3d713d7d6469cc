// Command tab-visualizer listens to the default audio input, detects the
// pitch of each analysis window, and draws a scrolling trail of recent
// pitches annotated with harmonica tab symbols.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gordonklaus/portaudio"
	"github.com/kelseyhightower/envconfig"

	"github.com/Seebass22/tab-visualizer/capture"
	"github.com/Seebass22/tab-visualizer/pipeline"
	"github.com/Seebass22/tab-visualizer/ui"
)

// Config is read from the environment with TABVIZ_ prefixed variables,
// e.g. TABVIZ_KEY=G TABVIZ_TUNING="paddy richter".
type Config struct {
	SampleRate       int     `default:"44100" split_words:"true"`
	WindowSize       int     `default:"1024" split_words:"true"`
	FramesPerBuffer  int     `default:"512" split_words:"true"`
	LatencySamples   int     `default:"8192" split_words:"true"`
	TrailCapacity    int     `default:"4096" split_words:"true"`
	PowerThreshold   float64 `default:"3.0" split_words:"true"`
	ClarityThreshold float64 `default:"0.7" split_words:"true"`
	Key              string  `default:"C"`
	Tuning           string  `default:"richter"`
	LeftColor        string  `default:"#001ACC" split_words:"true"`
	RightColor       string  `default:"#FF1ACC" split_words:"true"`
	BoundsFromKey    bool    `default:"true" split_words:"true"`
}

// initLogger routes slog to a file, since the TUI owns the terminal.
// Debug mode logs every accepted pitch.
func initLogger(debug bool) (*os.File, error) {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	path := filepath.Join(os.TempDir(), "tab-visualizer.log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	h := slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(h))
	return f, nil
}

func run() error {
	debug := flag.Bool("debug", false, "log accepted pitches")
	flag.Parse()

	logFile, err := initLogger(*debug)
	if err != nil {
		return err
	}
	defer logFile.Close()

	var cfg Config
	if err := envconfig.Process("tabviz", &cfg); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	if err := portaudio.Initialize(); err != nil {
		return fmt.Errorf("portaudio: %w", err)
	}
	defer portaudio.Terminate()

	// The relay has twice the latency cushion's space, so the prefill
	// leaves enough headroom that it never overflows in steady state.
	relay := capture.NewRelay(cfg.LatencySamples * 2)
	relay.Prefill(cfg.LatencySamples)

	pipe, err := pipeline.New(relay, pipeline.Options{
		SampleRate:    cfg.SampleRate,
		WindowSize:    cfg.WindowSize,
		TrailCapacity: cfg.TrailCapacity,
		Settings: pipeline.Settings{
			PowerThreshold:   cfg.PowerThreshold,
			ClarityThreshold: cfg.ClarityThreshold,
			Key:              cfg.Key,
			Tuning:           cfg.Tuning,
			LeftColor:        cfg.LeftColor,
			RightColor:       cfg.RightColor,
			BoundsFromKey:    cfg.BoundsFromKey,
		},
	})
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	engine, err := capture.NewEngine(relay, capture.Config{
		SampleRate:      cfg.SampleRate,
		FramesPerBuffer: cfg.FramesPerBuffer,
	})
	if err != nil {
		return err
	}
	defer engine.Close()

	if err := engine.Start(); err != nil {
		return err
	}
	defer engine.Stop()

	prog := tea.NewProgram(ui.NewModel(pipe), tea.WithAltScreen())
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
