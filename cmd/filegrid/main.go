package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/filegrid/filegrid/internal/app"
	"github.com/filegrid/filegrid/internal/config"
)

func main() {
	configPath := flag.String("config", config.DefaultPath(), "path to the TOML config file")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `filegrid - terminal file browser widget demo

USAGE:
    filegrid [OPTIONS] [DIR]

OPTIONS:
`)
		flag.PrintDefaults()
	}
	flag.Parse()

	startPath := flag.Arg(0)
	if startPath == "" {
		cwd, err := os.Getwd()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error resolving working directory: %v\n", err)
			os.Exit(1)
		}
		startPath = cwd
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	a, err := app.New(cfg, startPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing application: %v\n", err)
		os.Exit(1)
	}
	defer a.Close()

	a.Run()
}
