//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"ember/app"
	"ember/hal"
	"ember/internal/buildinfo"
)

func main() {
	var cfg hal.HeadlessConfig
	var host hal.HostConfig
	var win hal.WindowConfig
	var appCfg app.Config
	var title string
	flag.BoolVar(&cfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&cfg.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&cfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.StringVar(&host.Iface, "iface", "", "Network interface whose link state drives the LAN indicator.")
	flag.StringVar(&host.MediaPath, "media", "", "Path whose presence means removable media is inserted.")
	flag.IntVar(&host.Width, "width", 240, "Framebuffer width in pixels.")
	flag.IntVar(&host.Height, "height", 320, "Framebuffer height in pixels.")
	flag.IntVar(&win.Scale, "scale", 2, "Window scale factor.")
	flag.DurationVar(&appCfg.LinkPoll, "link-poll", time.Second, "Link state polling period.")
	flag.StringVar(&title, "title", "", "Header title shown at start.")
	flag.Parse()

	win.Title = buildinfo.Title()
	if title != "" {
		appCfg.Titles = []string{title}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	newApp := func(ctx context.Context, h hal.HAL) (func() error, error) {
		h.Logger().WriteLineString("ember: " + buildinfo.Short())
		return app.NewWithConfig(ctx, h, appCfg)
	}

	var err error
	if cfg.Enabled {
		err = hal.RunHeadless(ctx, host, newApp, cfg)
	} else {
		err = hal.RunWindow(ctx, host, newApp, win)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
