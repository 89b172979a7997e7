// Package main provides the seed command for populating the platform with
// demo data. Seeders run in registration order against the REST surface.
package main

import (
	"context"
	"fmt"
	"slices"

	"github.com/JaimeStill/antique-feed/pkg/supabase"
)

// Seeder populates one slice of demo data.
type Seeder interface {
	Name() string
	Description() string

	// Seed writes the seeder's rows through db. Writes are not transactional;
	// a failure leaves earlier rows in place.
	Seed(ctx context.Context, db supabase.Database) error
}

var (
	seeders = map[string]Seeder{}
	order   []string
)

// registerSeeder adds a seeder to the registry. Seeders self-register via init().
func registerSeeder(s Seeder) {
	if _, ok := seeders[s.Name()]; !ok {
		order = append(order, s.Name())
	}
	seeders[s.Name()] = s
}

func getSeeder(name string) (Seeder, bool) {
	s, ok := seeders[name]
	return s, ok
}

// listSeeders returns the registered seeders sorted by name.
func listSeeders() []Seeder {
	names := slices.Clone(order)
	slices.Sort(names)

	result := make([]Seeder, 0, len(names))
	for _, name := range names {
		result = append(result, seeders[name])
	}
	return result
}

func runSeeder(ctx context.Context, db supabase.Database, name string) error {
	seeder, ok := getSeeder(name)
	if !ok {
		return fmt.Errorf("seeder not found: %s", name)
	}

	if err := seeder.Seed(ctx, db); err != nil {
		return fmt.Errorf("seed %s: %w", name, err)
	}
	return nil
}

// runAllSeeders executes every seeder in registration order, stopping at the first failure.
func runAllSeeders(ctx context.Context, db supabase.Database) error {
	for _, name := range order {
		if err := runSeeder(ctx, db, name); err != nil {
			return err
		}
	}
	return nil
}
