package main

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/JaimeStill/antique-feed/pkg/supabase"
)

//go:embed catalog.json
var catalogJSON []byte

func init() {
	registerSeeder(&CatalogSeeder{})
}

// CatalogSeedData is the JSON structure of catalog seed files.
type CatalogSeedData struct {
	Sessions []SessionSeed `json:"sessions"`
}

// SessionSeed is a live session and the products offered during it.
type SessionSeed struct {
	Session  supabase.Record   `json:"session"`
	Products []supabase.Record `json:"products"`
}

// CatalogSeeder creates demo live sessions with their products.
type CatalogSeeder struct {
	file string
}

func (s *CatalogSeeder) Name() string {
	return "catalog"
}

func (s *CatalogSeeder) Description() string {
	return "Seeds demo live sessions and the products listed in them"
}

// SetFile configures an external seed file path, overriding the embedded default.
func (s *CatalogSeeder) SetFile(path string) {
	s.file = path
}

func (s *CatalogSeeder) Seed(ctx context.Context, db supabase.Database) error {
	data, err := s.loadSeedData()
	if err != nil {
		return err
	}

	for i, entry := range data.Sessions {
		rows, err := db.Insert(ctx, "live_sessions", entry.Session)
		if err != nil {
			return fmt.Errorf("insert session %d: %w", i, err)
		}
		session, err := supabase.First(rows)
		if err != nil {
			return fmt.Errorf("insert session %d: %w", i, err)
		}

		for j, product := range entry.Products {
			row := make(supabase.Record, len(product)+1)
			for k, v := range product {
				row[k] = v
			}
			row["session_id"] = session["id"]

			if _, err := db.Insert(ctx, "products", row); err != nil {
				return fmt.Errorf("insert product %d of session %d: %w", j, i, err)
			}
		}
	}

	return nil
}

func (s *CatalogSeeder) loadSeedData() (*CatalogSeedData, error) {
	content := catalogJSON
	if s.file != "" {
		b, err := os.ReadFile(s.file)
		if err != nil {
			return nil, fmt.Errorf("read seed file: %w", err)
		}
		content = b
	}

	var data CatalogSeedData
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("parse seed data: %w", err)
	}
	return &data, nil
}
