package deezer

import (
	"bytes"

	json "github.com/goccy/go-json"
)

// Records returned by the private gw-light API. Keys arrive upper-cased on
// the wire. The gateway is not shy about omitting fields or changing a
// field's type on edge records, so the polymorphic spots decode tolerantly.

// GWUserData is the session bootstrap document of deezer.getUserData.
// Its checkForm field carries the session token.
type GWUserData struct {
	CheckForm string `json:"checkForm"`
	SessionID string `json:"SESSION_ID"`
	Country   string `json:"COUNTRY"`
	OfferName string `json:"OFFER_NAME"`
	User      GWUser `json:"USER"`
}

// GWUser is the account summary nested in GWUserData.
type GWUser struct {
	UserID   int64  `json:"USER_ID"`
	BlogName string `json:"BLOG_NAME"`
	Email    string `json:"EMAIL"`
}

// GWTrackPage is the web-player page document of deezer.pageTrack.
type GWTrackPage struct {
	Track         GWSong          `json:"DATA"`
	Lyrics        *GWLyrics       `json:"LYRICS"`
	ISRC          GWAlbumSummList `json:"ISRC"`
	RelatedAlbums GWAlbumSummList `json:"RELATED_ALBUMS"`
}

// GWSong is the gateway track record. deezer.pageTrack, song.getData and
// the song list methods all return this shape, with varying subsets of the
// fields populated.
type GWSong struct {
	SngID               string             `json:"SNG_ID"`
	SngTitle            string             `json:"SNG_TITLE"`
	SngStatus           string             `json:"SNG_STATUS"`
	ProductTrackID      string             `json:"PRODUCT_TRACK_ID"`
	UploadID            int64              `json:"UPLOAD_ID"`
	ArtID               string             `json:"ART_ID"`
	ArtName             string             `json:"ART_NAME"`
	ArtPicture          string             `json:"ART_PICTURE"`
	ArtistIsDummy       bool               `json:"ARTIST_IS_DUMMY"`
	Artists             []GWArtist         `json:"ARTISTS"`
	AlbID               string             `json:"ALB_ID"`
	AlbTitle            string             `json:"ALB_TITLE"`
	AlbPicture          string             `json:"ALB_PICTURE"`
	Type                int64              `json:"TYPE"`
	Video               bool               `json:"VIDEO"`
	Duration            string             `json:"DURATION"`
	Version             string             `json:"VERSION"`
	ProviderID          string             `json:"PROVIDER_ID"`
	Rank                string             `json:"RANK"`
	RankSng             string             `json:"RANK_SNG"`
	FilesizeAAC64       string             `json:"FILESIZE_AAC_64"`
	FilesizeMP364       string             `json:"FILESIZE_MP3_64"`
	FilesizeMP3128      string             `json:"FILESIZE_MP3_128"`
	FilesizeMP3256      string             `json:"FILESIZE_MP3_256"`
	FilesizeMP3320      string             `json:"FILESIZE_MP3_320"`
	FilesizeMP4RA1      string             `json:"FILESIZE_MP4_RA1"`
	FilesizeMP4RA2      string             `json:"FILESIZE_MP4_RA2"`
	FilesizeMP4RA3      string             `json:"FILESIZE_MP4_RA3"`
	FilesizeMHM1RA1     string             `json:"FILESIZE_MHM1_RA1"`
	FilesizeMHM1RA2     string             `json:"FILESIZE_MHM1_RA2"`
	FilesizeMHM1RA3     string             `json:"FILESIZE_MHM1_RA3"`
	FilesizeFLAC        string             `json:"FILESIZE_FLAC"`
	Filesize            string             `json:"FILESIZE"`
	Gain                string             `json:"GAIN"`
	MediaVersion        string             `json:"MEDIA_VERSION"`
	DiskNumber          string             `json:"DISK_NUMBER"`
	TrackNumber         string             `json:"TRACK_NUMBER"`
	TrackToken          string             `json:"TRACK_TOKEN"`
	TrackTokenExpire    int64              `json:"TRACK_TOKEN_EXPIRE"`
	Media               []GWMedia          `json:"MEDIA"`
	ExplicitLyrics      string             `json:"EXPLICIT_LYRICS"`
	ExplicitContent     GWExplicitContent  `json:"EXPLICIT_TRACK_CONTENT"`
	Rights              GWRights           `json:"RIGHTS"`
	ISRC                string             `json:"ISRC"`
	HierarchicalTitle   string             `json:"HIERARCHICAL_TITLE"`
	SngContributors     GWSongContributors `json:"SNG_CONTRIBUTORS"`
	LyricsID            int64              `json:"LYRICS_ID"`
	GenreID             string             `json:"GENRE_ID"`
	Copyright           string             `json:"COPYRIGHT"`
	PhysicalReleaseDate string             `json:"PHYSICAL_RELEASE_DATE"`
	DigitalReleaseDate  string             `json:"DIGITAL_RELEASE_DATE"`
	Smartradio          int64              `json:"SMARTRADIO"`
	Status              int64              `json:"STATUS"`
	UserID              int64              `json:"USER_ID"`
	URLRewriting        string             `json:"URL_REWRITING"`
	AvailableCountries  GWCountries        `json:"AVAILABLE_COUNTRIES"`
	UpdateDate          string             `json:"UPDATE_DATE"`
	// Fallback is an alternative playable record the gateway sometimes
	// attaches; its shape varies, so it stays raw.
	Fallback json.RawMessage `json:"FALLBACK"`
	TypeName string          `json:"__TYPE__"`
}

// GWSongList is the envelope of song.getListData and song.getListByAlbum.
type GWSongList struct {
	Songs         []GWSong `json:"data"`
	Count         int64    `json:"count"`
	Total         int64    `json:"total"`
	FilteredCount int64    `json:"filtered_count"`
}

// GWAlbum is the gateway album record of album.getData.
type GWAlbum struct {
	AlbID                string            `json:"ALB_ID"`
	AlbTitle             string            `json:"ALB_TITLE"`
	AlbPicture           string            `json:"ALB_PICTURE"`
	ExplicitAlbumContent GWExplicitContent `json:"EXPLICIT_ALBUM_CONTENT"`
	ArtID                string            `json:"ART_ID"`
	ArtName              string            `json:"ART_NAME"`
	Copyright            string            `json:"COPYRIGHT"`
	DigitalReleaseDate   string            `json:"DIGITAL_RELEASE_DATE"`
	PhysicalReleaseDate  string            `json:"PHYSICAL_RELEASE_DATE"`
	OriginalReleaseDate  string            `json:"ORIGINAL_RELEASE_DATE"`
	GenreID              string            `json:"GENRE_ID"`
	LabelName            string            `json:"LABEL_NAME"`
	NbFan                int64             `json:"NB_FAN"`
	NumberDisk           string            `json:"NUMBER_DISK"`
	NumberTrack          string            `json:"NUMBER_TRACK"`
	Rank                 string            `json:"RANK"`
	RankArt              string            `json:"RANK_ART"`
	Status               string            `json:"STATUS"`
	TypeName             string            `json:"__TYPE__"`
}

// GWArtist is the artist credit embedded in gateway track records.
type GWArtist struct {
	ArtID             string    `json:"ART_ID"`
	RoleID            string    `json:"ROLE_ID"`
	ArtistsSongsOrder string    `json:"ARTISTS_SONGS_ORDER"`
	ArtName           string    `json:"ART_NAME"`
	ArtistIsDummy     bool      `json:"ARTIST_IS_DUMMY"`
	ArtPicture        string    `json:"ART_PICTURE"`
	Rank              string    `json:"RANK"`
	Locales           GWLocales `json:"LOCALES"`
	TypeName          string    `json:"__TYPE__"`
}

// GWLyrics is the lyrics record of song.getLyrics.
type GWLyrics struct {
	LyricsID    string         `json:"LYRICS_ID"`
	SyncedLines []GWLyricsLine `json:"LYRICS_SYNC_JSON"`
	Text        string         `json:"LYRICS_TEXT"`
	Copyrights  string         `json:"LYRICS_COPYRIGHTS"`
	Writers     string         `json:"LYRICS_WRITERS"`
}

// GWLyricsLine is one time-coded line of synchronized lyrics.
// Its keys are the one lower-cased corner of the gateway schema.
type GWLyricsLine struct {
	LRCTimestamp string `json:"lrc_timestamp"`
	Milliseconds string `json:"milliseconds"`
	Duration     string `json:"duration"`
	Line         string `json:"line"`
}

// GWAlbumSummList is a paged list of album summaries, used for the ISRC
// variants and related albums of a track page.
type GWAlbumSummList struct {
	Data  []GWAlbumSummary `json:"data"`
	Count int64            `json:"count"`
	Total int64            `json:"total"`
}

// GWAlbumSummary is the abbreviated album reference inside GWAlbumSummList.
type GWAlbumSummary struct {
	ArtName            string   `json:"ART_NAME"`
	ArtID              string   `json:"ART_ID"`
	AlbPicture         string   `json:"ALB_PICTURE"`
	AlbID              string   `json:"ALB_ID"`
	AlbTitle           string   `json:"ALB_TITLE"`
	Duration           string   `json:"DURATION"`
	DigitalReleaseDate string   `json:"DIGITAL_RELEASE_DATE"`
	Rights             GWRights `json:"RIGHTS"`
	LyricsID           int64    `json:"LYRICS_ID"`
	TypeName           string   `json:"__TYPE__"`
}

// GWMedia is a preview media link attached to a gateway track.
type GWMedia struct {
	Type string `json:"TYPE"`
	Href string `json:"HREF"`
}

// GWRights describes how a record may be streamed.
type GWRights struct {
	StreamAdsAvailable bool   `json:"STREAM_ADS_AVAILABLE"`
	StreamAds          string `json:"STREAM_ADS"`
	StreamSubAvailable bool   `json:"STREAM_SUB_AVAILABLE"`
	StreamSub          string `json:"STREAM_SUB"`
}

// GWExplicitContent carries the explicit-content status flags of a record.
type GWExplicitContent struct {
	ExplicitLyricsStatus int `json:"EXPLICIT_LYRICS_STATUS"`
	ExplicitCoverStatus  int `json:"EXPLICIT_COVER_STATUS"`
}

// GWCountries lists the countries a record is streamable in, per tier.
type GWCountries struct {
	StreamAds     []string `json:"STREAM_ADS"`
	StreamSubOnly []string `json:"STREAM_SUB_ONLY"`
}

// GWSongContributors maps a contributor role to the credited names.
// The gateway sends an object normally but an empty array when a track has
// no credits, so decoding tolerates both.
type GWSongContributors map[string][]string

// UnmarshalJSON implements tolerant decoding for GWSongContributors.
func (c *GWSongContributors) UnmarshalJSON(data []byte) error {
	if emptyCollection(data) {
		*c = nil

		return nil
	}

	var contributors map[string][]string
	if err := json.Unmarshal(data, &contributors); err != nil {
		return err
	}

	*c = contributors

	return nil
}

// GWLocales maps a locale code to localized name variants.
// Like SNG_CONTRIBUTORS, an empty set arrives as an array.
type GWLocales map[string]map[string]string

// UnmarshalJSON implements tolerant decoding for GWLocales.
func (l *GWLocales) UnmarshalJSON(data []byte) error {
	if emptyCollection(data) {
		*l = nil

		return nil
	}

	var locales map[string]map[string]string
	if err := json.Unmarshal(data, &locales); err != nil {
		return err
	}

	*l = locales

	return nil
}

// emptyCollection reports whether data is JSON null or an array, the two
// shapes the gateway substitutes for an empty object.
func emptyCollection(data []byte) bool {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return true
	}

	return trimmed[0] == '[' || bytes.Equal(trimmed, []byte("null"))
}
