package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"music_recsys/internal/models"
)

// LoadCSV reads the song dataset from path. A missing file is seeded with
// the bundled sample dataset first, so a fresh checkout serves immediately.
func LoadCSV(path string) ([]models.Song, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		log.Printf("[Catalog] %s not found, writing sample dataset", path)
		if err := WriteSampleCSV(path); err != nil {
			return nil, fmt.Errorf("seeding sample dataset: %w", err)
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset: %w", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading dataset: %w", err)
	}
	if len(records) == 0 {
		return []models.Song{}, nil
	}

	cols := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := cols["track_name"]; !ok {
		return nil, fmt.Errorf("dataset %s has no track_name column", path)
	}

	field := func(row []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	songs := make([]models.Song, 0, len(records)-1)
	for _, row := range records[1:] {
		year, _ := strconv.Atoi(field(row, "year"))
		language := field(row, "language")
		if language == "" {
			// Older datasets predate the language column.
			language = "English"
		}
		songs = append(songs, models.Song{
			TrackName:  field(row, "track_name"),
			ArtistName: field(row, "artist_name"),
			Genre:      field(row, "genre"),
			Year:       year,
			Language:   language,
		})
	}
	log.Printf("[Catalog] Loaded %d songs from %s", len(songs), path)
	return songs, nil
}

// WriteSampleCSV writes the bundled sample dataset to path.
func WriteSampleCSV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if err := w.Write([]string{"track_name", "artist_name", "genre", "year", "language"}); err != nil {
		f.Close()
		return err
	}
	for _, song := range SampleSongs() {
		row := []string{song.TrackName, song.ArtistName, song.Genre, strconv.Itoa(song.Year), song.Language}
		if err := w.Write(row); err != nil {
			f.Close()
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
