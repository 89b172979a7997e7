package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/JaimeStill/antique-feed/pkg/supabase"
)

var platformEnv = &supabase.Env{
	URL:     "SUPABASE_URL",
	Key:     "SUPABASE_KEY",
	Timeout: "SUPABASE_TIMEOUT",
}

func main() {
	var (
		all  = flag.Bool("all", false, "Run all seeders")
		only = flag.String("seeder", "", "Run a single seeder by name")
		file = flag.String("file", "", "External seed file for -seeder (overrides embedded)")
		list = flag.Bool("list", false, "List available seeders")
	)
	flag.Parse()

	if *list {
		fmt.Println("Available seeders:")
		for _, s := range listSeeders() {
			fmt.Printf("  - %s: %s\n", s.Name(), s.Description())
		}
		return
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("failed to load env file: %v", err)
	}

	cfg := &supabase.Config{}
	if err := cfg.Finalize(platformEnv); err != nil {
		log.Fatalf("platform configuration: %v", err)
	}

	db, err := supabase.New(cfg, slog.New(slog.NewTextHandler(os.Stderr, nil)))
	if err != nil {
		log.Fatalf("failed to create platform client: %v", err)
	}

	ctx := context.Background()

	switch {
	case *all:
		if err := runAllSeeders(ctx, db); err != nil {
			log.Fatalf("seeding failed: %v", err)
		}
		fmt.Println("all seeders completed successfully")

	case *only != "":
		if *file != "" {
			if seeder, ok := getSeeder(*only); ok {
				if fileSeeder, ok := seeder.(interface{ SetFile(string) }); ok {
					fileSeeder.SetFile(*file)
				}
			}
		}
		if err := runSeeder(ctx, db, *only); err != nil {
			log.Fatalf("seeding failed: %v", err)
		}
		fmt.Printf("%s seeded successfully\n", *only)

	default:
		fmt.Println("usage: seed [-all|-seeder <name>] [-file <path>] [-list]")
		flag.PrintDefaults()
	}
}
