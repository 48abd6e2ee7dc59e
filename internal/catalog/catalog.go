package catalog

import (
	"fmt"
	"log"

	"music_recsys/internal/config"
)

const (
	SourceCSV      = "csv"
	SourceSQLite   = "sqlite"
	SourcePostgres = "postgres"
)

// Load builds the store from the configured catalog source. The source is
// read exactly once; the store never changes afterwards.
func Load(cfg *config.Config) (*Store, error) {
	switch cfg.CatalogSource {
	case "", SourceCSV:
		songs, err := LoadCSV(cfg.DataFile)
		if err != nil {
			return nil, err
		}
		return NewStore(songs), nil
	case SourceSQLite:
		songs, err := LoadSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		log.Printf("[Catalog] Loaded %d songs from sqlite %s", len(songs), cfg.SQLitePath)
		return NewStore(songs), nil
	case SourcePostgres:
		songs, err := LoadPostgres(cfg)
		if err != nil {
			return nil, err
		}
		log.Printf("[Catalog] Loaded %d songs from postgres %s/%s", len(songs), cfg.DBHost, cfg.DBName)
		return NewStore(songs), nil
	default:
		return nil, fmt.Errorf("unknown catalog source %q", cfg.CatalogSource)
	}
}
