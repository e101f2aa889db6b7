package deezer

// Records returned by the public API. Field sets mirror the live service;
// fields the API omits on edge records decode to their zero values.

// FullTrack is the complete track record returned by the track endpoints.
type FullTrack struct {
	ID                    int64         `json:"id"`
	Readable              bool          `json:"readable"`
	Title                 string        `json:"title"`
	TitleShort            string        `json:"title_short"`
	TitleVersion          string        `json:"title_version"`
	ISRC                  string        `json:"isrc"`
	Link                  string        `json:"link"`
	Share                 string        `json:"share"`
	Duration              int64         `json:"duration"`
	TrackPosition         int64         `json:"track_position"`
	DiskNumber            int64         `json:"disk_number"`
	Rank                  int64         `json:"rank"`
	ReleaseDate           string        `json:"release_date"`
	ExplicitLyrics        bool          `json:"explicit_lyrics"`
	ExplicitContentLyrics int           `json:"explicit_content_lyrics"`
	ExplicitContentCover  int           `json:"explicit_content_cover"`
	Preview               string        `json:"preview"`
	BPM                   float64       `json:"bpm"`
	Gain                  float64       `json:"gain"`
	AvailableCountries    []string      `json:"available_countries"`
	Contributors          []Contributor `json:"contributors"`
	MD5Image              string        `json:"md5_image"`
	Artist                Artist        `json:"artist"`
	Album                 Album         `json:"album"`
	Type                  string        `json:"type"`
}

// Track is the abbreviated track record embedded in lists and search results.
type Track struct {
	ID                    int64         `json:"id"`
	Readable              bool          `json:"readable"`
	Title                 string        `json:"title"`
	TitleShort            string        `json:"title_short"`
	TitleVersion          string        `json:"title_version"`
	ISRC                  string        `json:"isrc"`
	Link                  string        `json:"link"`
	Duration              int64         `json:"duration"`
	TrackPosition         int64         `json:"track_position"`
	DiskNumber            int64         `json:"disk_number"`
	Rank                  int64         `json:"rank"`
	ExplicitLyrics        bool          `json:"explicit_lyrics"`
	ExplicitContentLyrics int           `json:"explicit_content_lyrics"`
	ExplicitContentCover  int           `json:"explicit_content_cover"`
	Preview               string        `json:"preview"`
	Contributors          []Contributor `json:"contributors"`
	MD5Image              string        `json:"md5_image"`
	Artist                Artist        `json:"artist"`
	Album                 Album         `json:"album"`
	Type                  string        `json:"type"`
}

// FullAlbum is the complete album record returned by the album endpoints.
type FullAlbum struct {
	ID                    int64         `json:"id"`
	Title                 string        `json:"title"`
	UPC                   string        `json:"upc"`
	Link                  string        `json:"link"`
	Share                 string        `json:"share"`
	Cover                 string        `json:"cover"`
	CoverSmall            string        `json:"cover_small"`
	CoverMedium           string        `json:"cover_medium"`
	CoverBig              string        `json:"cover_big"`
	CoverXL               string        `json:"cover_xl"`
	MD5Image              string        `json:"md5_image"`
	GenreID               int64         `json:"genre_id"`
	Genres                GenresData    `json:"genres"`
	Label                 string        `json:"label"`
	NbTracks              int64         `json:"nb_tracks"`
	Duration              int64         `json:"duration"`
	Fans                  int64         `json:"fans"`
	ReleaseDate           string        `json:"release_date"`
	RecordType            string        `json:"record_type"`
	Available             bool          `json:"available"`
	Tracklist             string        `json:"tracklist"`
	ExplicitLyrics        bool          `json:"explicit_lyrics"`
	ExplicitContentLyrics int           `json:"explicit_content_lyrics"`
	ExplicitContentCover  int           `json:"explicit_content_cover"`
	Contributors          []Contributor `json:"contributors"`
	Artist                Artist        `json:"artist"`
	Type                  string        `json:"type"`
	Tracks                TracksData    `json:"tracks"`
}

// Album is the abbreviated album record embedded in lists and search results.
type Album struct {
	ID             int64  `json:"id"`
	Title          string `json:"title"`
	Link           string `json:"link"`
	Cover          string `json:"cover"`
	CoverSmall     string `json:"cover_small"`
	CoverMedium    string `json:"cover_medium"`
	CoverBig       string `json:"cover_big"`
	CoverXL        string `json:"cover_xl"`
	MD5Image       string `json:"md5_image"`
	GenreID        int64  `json:"genre_id"`
	NbTracks       int64  `json:"nb_tracks"`
	Fans           int64  `json:"fans"`
	ReleaseDate    string `json:"release_date"`
	RecordType     string `json:"record_type"`
	Tracklist      string `json:"tracklist"`
	ExplicitLyrics bool   `json:"explicit_lyrics"`
	Artist         Artist `json:"artist"`
	Type           string `json:"type"`
}

// Artist is an artist record as returned by the artist and list endpoints.
type Artist struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Link          string `json:"link"`
	Share         string `json:"share"`
	Picture       string `json:"picture"`
	PictureSmall  string `json:"picture_small"`
	PictureMedium string `json:"picture_medium"`
	PictureBig    string `json:"picture_big"`
	PictureXL     string `json:"picture_xl"`
	NbAlbum       int64  `json:"nb_album"`
	NbFan         int64  `json:"nb_fan"`
	Radio         bool   `json:"radio"`
	Tracklist     string `json:"tracklist"`
	Type          string `json:"type"`
}

// Contributor is an artist credited on a track or album.
type Contributor struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Link          string `json:"link"`
	Share         string `json:"share"`
	Picture       string `json:"picture"`
	PictureSmall  string `json:"picture_small"`
	PictureMedium string `json:"picture_medium"`
	PictureBig    string `json:"picture_big"`
	PictureXL     string `json:"picture_xl"`
	Radio         bool   `json:"radio"`
	Tracklist     string `json:"tracklist"`
	Type          string `json:"type"`
	Role          string `json:"role"`
}

// RelatedArtist is an artist record from the related-artists endpoint.
type RelatedArtist struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Link          string `json:"link"`
	Picture       string `json:"picture"`
	PictureSmall  string `json:"picture_small"`
	PictureMedium string `json:"picture_medium"`
	PictureBig    string `json:"picture_big"`
	PictureXL     string `json:"picture_xl"`
	NbAlbum       int64  `json:"nb_album"`
	NbFan         int64  `json:"nb_fan"`
	Radio         bool   `json:"radio"`
	Tracklist     string `json:"tracklist"`
	Type          string `json:"type"`
}

// Playlist is a playlist record as returned by list and search endpoints.
type Playlist struct {
	ID            int64        `json:"id"`
	Title         string       `json:"title"`
	Public        bool         `json:"public"`
	NbTracks      int64        `json:"nb_tracks"`
	Link          string       `json:"link"`
	Picture       string       `json:"picture"`
	PictureSmall  string       `json:"picture_small"`
	PictureMedium string       `json:"picture_medium"`
	PictureBig    string       `json:"picture_big"`
	PictureXL     string       `json:"picture_xl"`
	Checksum      string       `json:"checksum"`
	Tracklist     string       `json:"tracklist"`
	CreationDate  string       `json:"creation_date"`
	MD5Image      string       `json:"md5_image"`
	PictureType   string       `json:"picture_type"`
	User          PlaylistUser `json:"user"`
	Type          string       `json:"type"`
}

// PlaylistUser is the owner reference embedded in a playlist record.
type PlaylistUser struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Tracklist string `json:"tracklist"`
	Type      string `json:"type"`
}

// User is a user record from the user search endpoint.
type User struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Link          string `json:"link"`
	Picture       string `json:"picture"`
	PictureSmall  string `json:"picture_small"`
	PictureMedium string `json:"picture_medium"`
	PictureBig    string `json:"picture_big"`
	PictureXL     string `json:"picture_xl"`
	Tracklist     string `json:"tracklist"`
	Type          string `json:"type"`
}

// Editorial is a genre or editorial selection record. The genre and
// editorial endpoints share this shape.
type Editorial struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
	PictureSmall  string `json:"picture_small"`
	PictureMedium string `json:"picture_medium"`
	PictureBig    string `json:"picture_big"`
	PictureXL     string `json:"picture_xl"`
	Type          string `json:"type"`
}

// Genre is the genre reference embedded in album records.
type Genre struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
	Type    string `json:"type"`
}

// Radio is a radio channel record.
type Radio struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Share         string `json:"share"`
	Picture       string `json:"picture"`
	PictureSmall  string `json:"picture_small"`
	PictureMedium string `json:"picture_medium"`
	PictureBig    string `json:"picture_big"`
	PictureXL     string `json:"picture_xl"`
	Tracklist     string `json:"tracklist"`
	MD5Image      string `json:"md5_image"`
	Type          string `json:"type"`
}

// GenreRadios groups the radios of one genre, as returned by radio/genres.
type GenreRadios struct {
	ID     int64   `json:"id"`
	Title  string  `json:"title"`
	Radios []Radio `json:"radios"`
}

// Info describes service availability in the caller's country.
type Info struct {
	CountryISO          string    `json:"country_iso"`
	Country             string    `json:"country"`
	Open                bool      `json:"open"`
	Pop                 string    `json:"pop"`
	UploadToken         string    `json:"upload_token"`
	UploadTokenLifetime int64     `json:"upload_token_lifetime"`
	UserToken           string    `json:"user_token"`
	Hosts               InfoHosts `json:"hosts"`
	HasPodcasts         bool      `json:"has_podcasts"`
}

// InfoHosts carries the media host templates of an Info record.
type InfoHosts struct {
	Stream string `json:"stream"`
	Images string `json:"images"`
}

// GenresData wraps the genre list nested inside an album record.
type GenresData struct {
	Data []Genre `json:"data"`
}

// TracksData wraps the track list nested inside an album record.
type TracksData struct {
	Data []Track `json:"data"`
}
