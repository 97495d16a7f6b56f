package main

import (
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/crimson-sun/crumb/internal/cli"
	"github.com/crimson-sun/crumb/internal/config"
	"github.com/crimson-sun/crumb/internal/cookielog"
	"github.com/crimson-sun/crumb/internal/logging"
	"github.com/crimson-sun/crumb/internal/pipeline"
	"github.com/crimson-sun/crumb/internal/render"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logging.Init(cfg.LogFormat, logging.ParseLevel(cfg.LogLevel))

	args, err := cli.Parse(os.Args[1:])
	if errors.Is(err, cli.ErrUsage) {
		fmt.Println(cli.Usage)
		return
	}
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	// Resolve input format.
	name := cfg.Format
	if name == "auto" {
		name = cookielog.Detect(args.File)
	}
	ctor, err := cookielog.Get(name)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	parser := cookielog.NewParser(ctor(), slog.Default())

	width := cfg.Width
	if width == 0 {
		width = render.DetectWidth()
	}
	renderer := render.New(os.Stdout,
		render.WithWidth(width),
		render.WithColor(render.ColorEnabled(cfg.Color)),
	)

	p := pipeline.New(parser, renderer, slog.Default())

	slog.Debug("starting analysis",
		"file", args.File,
		"date", args.Date.String(),
		"format", name)

	if err := p.Run(args.File, args.Date); err != nil {
		slog.Error("analysis failed", "error", err)
		fmt.Println("Error:", err)
		return
	}
}
