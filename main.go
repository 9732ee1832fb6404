package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/benbjohnson/clock"
	"github.com/spf13/pflag"

	"github.com/ObserverHerb/Gopher360/internal/config"
	"github.com/ObserverHerb/Gopher360/internal/console"
	"github.com/ObserverHerb/Gopher360/internal/gamepad"
	"github.com/ObserverHerb/Gopher360/internal/gopher"
	"github.com/ObserverHerb/Gopher360/internal/input"
	"github.com/ObserverHerb/Gopher360/internal/tray"
)

// Cross-platform signal handling: os.Interrupt covers Ctrl+C on Windows
// and SIGINT elsewhere.
var shutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}

func main() {
	configPath := pflag.String("config", "gopher.toml", "path to the configuration file")
	pflag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load %s: %v", *configPath, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, shutdownSignals...)

	pad := gamepad.Find()
	windows := console.NewManager()
	engine := gopher.New(cfg, pad, input.NewInjector(), windows, clock.New())

	printWelcome(cfg)
	windows.SetConsoleVisible(true)

	engineDone := make(chan struct{})
	go func() {
		engine.Run(ctx)
		close(engineDone)
	}()

	// Channel for tray-triggered shutdown
	shutdownRequested := make(chan struct{})

	// The system tray only makes sense on Windows, where the console
	// window can be hidden while the mapper keeps running.
	if runtime.GOOS == "windows" {
		go func() {
			t := tray.New(func() {
				close(shutdownRequested)
			})
			t.Run(tray.GetIcon())
		}()
	} else {
		log.Println("Press Ctrl+C to exit")
	}

	select {
	case <-sigCh:
		log.Println("Shutting down...")
	case <-shutdownRequested:
		log.Println("Shutdown requested from tray")
	}
	cancel()

	<-engineDone
	log.Println("Gopher360 stopped")
}

func printWelcome(cfg *config.Config) {
	log.Println("Gopher360 started: mapping controller input to mouse and keyboard")
	log.Printf("Dead zone: %d, scroll dead zone: %d, scroll speed: %.3f",
		cfg.DeadZone, cfg.ScrollDeadZone, cfg.ScrollSpeed)
	speeds := make([]string, 0, len(cfg.CursorSpeeds))
	for _, p := range cfg.CursorSpeeds {
		speeds = append(speeds, p.Name)
	}
	log.Printf("Cursor speed presets: %v (cycle with the speed-change command)", speeds)
}
