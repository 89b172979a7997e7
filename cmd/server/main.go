package main

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/JaimeStill/antique-feed/internal/config"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatal("env file load failed: ", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config load failed: ", err)
	}
	if err := cfg.Finalize(); err != nil {
		log.Fatal("config finalize failed: ", err)
	}

	a, err := newApp(cfg)
	if err != nil {
		log.Fatal("init failed: ", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := a.run(ctx); err != nil {
		log.Fatal(err)
	}
	log.Println("server stopped gracefully")
}
