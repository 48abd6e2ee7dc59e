package catalog

import "music_recsys/internal/models"

// SampleSongs returns the bundled starter dataset, written to disk on first
// run when no catalog file exists yet.
func SampleSongs() []models.Song {
	return []models.Song{
		{TrackName: "Bohemian Rhapsody", ArtistName: "Queen", Genre: "Rock", Year: 1975, Language: "English"},
		{TrackName: "Hotel California", ArtistName: "Eagles", Genre: "Rock", Year: 1976, Language: "English"},
		{TrackName: "Imagine", ArtistName: "John Lennon", Genre: "Pop", Year: 1971, Language: "English"},
		{TrackName: "Stairway to Heaven", ArtistName: "Led Zeppelin", Genre: "Rock", Year: 1971, Language: "English"},
		{TrackName: "Like a Rolling Stone", ArtistName: "Bob Dylan", Genre: "Folk Rock", Year: 1965, Language: "English"},
		{TrackName: "Hey Jude", ArtistName: "The Beatles", Genre: "Pop", Year: 1968, Language: "English"},
		{TrackName: "Smells Like Teen Spirit", ArtistName: "Nirvana", Genre: "Grunge", Year: 1991, Language: "English"},
		{TrackName: "Yesterday", ArtistName: "The Beatles", Genre: "Pop", Year: 1965, Language: "English"},
		{TrackName: "Good Vibrations", ArtistName: "The Beach Boys", Genre: "Pop", Year: 1966, Language: "English"},
		{TrackName: "Johnny B. Goode", ArtistName: "Chuck Berry", Genre: "Rock", Year: 1958, Language: "English"},
		{TrackName: "My Generation", ArtistName: "The Who", Genre: "Rock", Year: 1965, Language: "English"},
		{TrackName: "Respect", ArtistName: "Aretha Franklin", Genre: "Soul", Year: 1967, Language: "English"},
		{TrackName: "What's Going On", ArtistName: "Marvin Gaye", Genre: "Soul", Year: 1971, Language: "English"},
		{TrackName: "I Want to Hold Your Hand", ArtistName: "The Beatles", Genre: "Pop", Year: 1963, Language: "English"},
		{TrackName: "Blowin' in the Wind", ArtistName: "Bob Dylan", Genre: "Folk", Year: 1963, Language: "English"},
		{TrackName: "Light My Fire", ArtistName: "The Doors", Genre: "Rock", Year: 1967, Language: "English"},
		{TrackName: "A Day in the Life", ArtistName: "The Beatles", Genre: "Pop", Year: 1967, Language: "English"},
		{TrackName: "Help!", ArtistName: "The Beatles", Genre: "Pop", Year: 1965, Language: "English"},
		{TrackName: "Satisfaction", ArtistName: "The Rolling Stones", Genre: "Rock", Year: 1965, Language: "English"},
		{TrackName: "Purple Haze", ArtistName: "Jimi Hendrix", Genre: "Rock", Year: 1967, Language: "English"},
		{TrackName: "Tum Hi Ho", ArtistName: "Arijit Singh", Genre: "Bollywood", Year: 2013, Language: "Hindi"},
		{TrackName: "Chaiyya Chaiyya", ArtistName: "A.R. Rahman", Genre: "Bollywood", Year: 1998, Language: "Hindi"},
		{TrackName: "Kal Ho Naa Ho", ArtistName: "Sonu Nigam", Genre: "Bollywood", Year: 2003, Language: "Hindi"},
		{TrackName: "Tere Sang Yaara", ArtistName: "Atif Aslam", Genre: "Bollywood", Year: 2017, Language: "Hindi"},
		{TrackName: "Raabta", ArtistName: "Pritam", Genre: "Bollywood", Year: 2017, Language: "Hindi"},
		{TrackName: "Gerua", ArtistName: "Arijit Singh", Genre: "Bollywood", Year: 2015, Language: "Hindi"},
		{TrackName: "Agar Tum Saath Ho", ArtistName: "Arijit Singh", Genre: "Bollywood", Year: 2015, Language: "Hindi"},
		{TrackName: "Raataan Lambiyan", ArtistName: "Jubin Nautiyal", Genre: "Bollywood", Year: 2021, Language: "Hindi"},
		{TrackName: "Kesariya", ArtistName: "Arijit Singh", Genre: "Bollywood", Year: 2022, Language: "Hindi"},
		{TrackName: "Tum Se Hi", ArtistName: "Mohit Chauhan", Genre: "Bollywood", Year: 2007, Language: "Hindi"},
		{TrackName: "Tum Mile", ArtistName: "Neeraj Shridhar", Genre: "Bollywood", Year: 2009, Language: "Hindi"},
		{TrackName: "Tere Bina", ArtistName: "A.R. Rahman", Genre: "Bollywood", Year: 2007, Language: "Hindi"},
		{TrackName: "Tum Hi Aana", ArtistName: "Jubin Nautiyal", Genre: "Bollywood", Year: 2019, Language: "Hindi"},
		{TrackName: "Laung Laachi", ArtistName: "Mannat Noor", Genre: "Punjabi Pop", Year: 2018, Language: "Punjabi"},
		{TrackName: "Patiala Peg", ArtistName: "Diljit Dosanjh", Genre: "Punjabi Pop", Year: 2015, Language: "Punjabi"},
		{TrackName: "Jatt & Juliet", ArtistName: "Diljit Dosanjh", Genre: "Punjabi Pop", Year: 2012, Language: "Punjabi"},
		{TrackName: "G.O.A.T.", ArtistName: "Diljit Dosanjh", Genre: "Punjabi Pop", Year: 2020, Language: "Punjabi"},
		{TrackName: "Lover", ArtistName: "Diljit Dosanjh", Genre: "Punjabi Pop", Year: 2020, Language: "Punjabi"},
		{TrackName: "Umbrella", ArtistName: "Diljit Dosanjh", Genre: "Punjabi Pop", Year: 2020, Language: "Punjabi"},
		{TrackName: "Do You Know", ArtistName: "Diljit Dosanjh", Genre: "Punjabi Pop", Year: 2020, Language: "Punjabi"},
		{TrackName: "Born to Shine", ArtistName: "Diljit Dosanjh", Genre: "Punjabi Pop", Year: 2020, Language: "Punjabi"},
	}
}
