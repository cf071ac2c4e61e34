package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/the-CCClouds/gym-system-new-sub001/internal/app"
	"github.com/the-CCClouds/gym-system-new-sub001/internal/config"
)

func main() {
	storage := flag.String("storage", "", "override STORAGE_DRIVER (postgres or memory)")
	flag.Parse()

	if err := run(*storage); err != nil {
		fmt.Fprintf(os.Stderr, "gym_booking: %v\n", err)
		os.Exit(1)
	}
}

func run(storage string) error {
	cfg := config.MustLoad()
	if err := overrideStorage(cfg, storage); err != nil {
		return err
	}

	application, err := app.New(cfg)
	if err != nil {
		return fmt.Errorf("app init: %w", err)
	}

	if err = application.Run(); err != nil {
		return fmt.Errorf("app run: %w", err)
	}
	return nil
}

func overrideStorage(cfg *config.Config, driver string) error {
	switch driver {
	case "":
		return nil
	case "postgres", "memory":
		cfg.Storage.Driver = driver
		return nil
	default:
		return fmt.Errorf("unknown storage driver %q", driver)
	}
}
