package main

import (
	"log"

	"SimpleWhiteboard/internal/bridge"
	"SimpleWhiteboard/internal/config"
	"SimpleWhiteboard/internal/notify"
	"SimpleWhiteboard/internal/surface"
	"SimpleWhiteboard/internal/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Printf("Using default configuration: %v", err)
	}

	notifier := notify.NewNotifier()
	notifier.Subscribe(func(m notify.Completion) {
		log.Printf("Board activated (block %s)", m.BlockID)
	})

	if cfg.Bridge.Enabled {
		hub := bridge.NewHub()
		notifier.SetForwarder(hub)
		go func() {
			if err := hub.Start(cfg.Bridge.Port); err != nil {
				log.Printf("Bridge stopped: %v", err)
			}
		}()

		if cfg.Bridge.Advertise {
			server, err := bridge.Advertise(cfg.Bridge.Port)
			if err != nil {
				log.Printf("mDNS advertise failed: %v", err)
			} else {
				defer server.Shutdown()
			}
		}
	}

	board := ui.New(surface.New(cfg.Width, cfg.Height), notifier)
	ui.RunApp(cfg.Title, board)
}
