package models

// Song is one immutable catalog record. ID is the ordinal load position and
// doubles as the row index into the similarity matrix.
type Song struct {
	ID         int    `gorm:"-" json:"-"`
	TrackName  string `gorm:"column:track_name" json:"track_name"`
	ArtistName string `gorm:"column:artist_name" json:"artist_name"`
	Genre      string `gorm:"column:genre" json:"genre"`
	Year       int    `gorm:"column:year" json:"year"`
	Language   string `gorm:"column:language" json:"language"`
}

func (Song) TableName() string {
	return "songs"
}

// CompositeText is the concatenated metadata string fed to the vectorizer.
// Never serialized to clients.
func (s *Song) CompositeText() string {
	return s.Genre + " " + s.ArtistName + " " + s.TrackName + " " + s.Language
}

// RecommendationResult is the shaped output of a recommendation query.
type RecommendationResult struct {
	QuerySong       string `json:"query_song"`
	Recommendations []Song `json:"recommendations"`
}
