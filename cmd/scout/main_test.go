package main

import (
	"testing"

	"github.com/louisbranch/touchline/internal/platform/config"
)

func TestEnvConfig(t *testing.T) {
	t.Setenv("TOUCHLINE_DB_PATH", "saves/test.db")
	t.Setenv("TOUCHLINE_SAVE", "second-career")

	var cfg envConfig
	if err := config.ParseEnv(&cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.DBPath != "saves/test.db" {
		t.Errorf("DBPath = %q, want %q", cfg.DBPath, "saves/test.db")
	}
	if cfg.Save != "second-career" {
		t.Errorf("Save = %q, want %q", cfg.Save, "second-career")
	}
}

func TestTickSeedVariesByWeek(t *testing.T) {
	seen := make(map[int64]bool)
	for season := 1; season <= 2; season++ {
		for week := 1; week <= 38; week++ {
			s := tickSeed(42, season, week)
			if seen[s] {
				t.Fatalf("duplicate seed %d at season %d week %d", s, season, week)
			}
			seen[s] = true
		}
	}
}
