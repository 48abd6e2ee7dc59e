package catalog

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // SQLite driver

	"music_recsys/internal/models"
)

// LoadSQLite reads the songs table from a SQLite database. Rows are read in
// rowid order so catalog ids follow insertion order.
func LoadSQLite(path string) ([]models.Song, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening sqlite catalog: %w", err)
	}
	defer db.Close()

	rows, err := db.Query(`SELECT track_name, artist_name, genre, year, language FROM songs ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("querying songs: %w", err)
	}
	defer rows.Close()

	var songs []models.Song
	for rows.Next() {
		var song models.Song
		var language sql.NullString
		if err := rows.Scan(&song.TrackName, &song.ArtistName, &song.Genre, &song.Year, &language); err != nil {
			return nil, fmt.Errorf("scanning song row: %w", err)
		}
		song.Language = language.String
		if song.Language == "" {
			song.Language = "English"
		}
		songs = append(songs, song)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading songs: %w", err)
	}
	return songs, nil
}
