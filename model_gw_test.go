package deezer

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGWSongContributors_UnmarshalJSON tests the tolerant decoding of the
// contributors field, which arrives as an array when empty.
func TestGWSongContributors_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		input       string
		expected    GWSongContributors
		expectError bool
	}{
		{
			name:     "object",
			input:    `{"main_artist": ["Daft Punk"], "composer": ["Thomas Bangalter", "Guy-Manuel de Homem-Christo"]}`,
			expected: GWSongContributors{"main_artist": {"Daft Punk"}, "composer": {"Thomas Bangalter", "Guy-Manuel de Homem-Christo"}},
		},
		{
			name:     "empty array",
			input:    `[]`,
			expected: nil,
		},
		{
			name:     "non-empty array still treated as empty",
			input:    `["stray"]`,
			expected: nil,
		},
		{
			name:     "null",
			input:    `null`,
			expected: nil,
		},
		{
			name:        "wrong scalar",
			input:       `42`,
			expectError: true,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			var contributors GWSongContributors

			err := json.Unmarshal([]byte(test.input), &contributors)
			if test.expectError {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, test.expected, contributors)
		})
	}
}

// TestGWLocales_UnmarshalJSON tests the same array-for-empty-object quirk on
// artist locales.
func TestGWLocales_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected GWLocales
	}{
		{
			name:     "object",
			input:    `{"lang_ja-jp": {"name": "ダフト・パンク"}}`,
			expected: GWLocales{"lang_ja-jp": {"name": "ダフト・パンク"}},
		},
		{
			name:     "empty array",
			input:    `[]`,
			expected: nil,
		},
		{
			name:     "null",
			input:    `null`,
			expected: nil,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			var locales GWLocales

			require.NoError(t, json.Unmarshal([]byte(test.input), &locales))
			assert.Equal(t, test.expected, locales)
		})
	}
}

// TestGWSong_Decode tests decoding a representative gateway track record,
// including the quirky nested fields.
func TestGWSong_Decode(t *testing.T) {
	t.Parallel()

	input := `{
		"SNG_ID": "3135556",
		"SNG_TITLE": "Harder, Better, Faster, Stronger",
		"ART_ID": "27",
		"ART_NAME": "Daft Punk",
		"ALB_ID": "302127",
		"ALB_TITLE": "Discovery",
		"DURATION": "224",
		"ISRC": "GBDUW0000059",
		"TRACK_TOKEN": "secret-token",
		"TRACK_TOKEN_EXPIRE": 1699999999,
		"FILESIZE_MP3_320": "8964744",
		"FILESIZE_FLAC": "25738751",
		"GAIN": "-1.3",
		"MEDIA": [{"TYPE": "preview", "HREF": "https://cdn.example.com/preview.mp3"}],
		"RIGHTS": {"STREAM_ADS_AVAILABLE": true, "STREAM_ADS": "2001-03-07"},
		"EXPLICIT_TRACK_CONTENT": {"EXPLICIT_LYRICS_STATUS": 0, "EXPLICIT_COVER_STATUS": 2},
		"AVAILABLE_COUNTRIES": {"STREAM_ADS": ["FR", "GB"], "STREAM_SUB_ONLY": []},
		"SNG_CONTRIBUTORS": [],
		"ARTISTS": [{"ART_ID": "27", "ART_NAME": "Daft Punk", "LOCALES": []}],
		"FALLBACK": {"SNG_ID": "999"},
		"__TYPE__": "song"
	}`

	var song GWSong

	require.NoError(t, json.Unmarshal([]byte(input), &song))

	assert.Equal(t, "3135556", song.SngID)
	assert.Equal(t, "Harder, Better, Faster, Stronger", song.SngTitle)
	assert.Equal(t, "224", song.Duration)
	assert.Equal(t, "secret-token", song.TrackToken)
	assert.Equal(t, int64(1699999999), song.TrackTokenExpire)
	assert.Equal(t, "8964744", song.FilesizeMP3320)
	assert.True(t, song.Rights.StreamAdsAvailable)
	assert.Equal(t, 2, song.ExplicitContent.ExplicitCoverStatus)
	assert.Equal(t, []string{"FR", "GB"}, song.AvailableCountries.StreamAds)
	assert.Nil(t, song.SngContributors)

	require.Len(t, song.Media, 1)
	assert.Equal(t, "preview", song.Media[0].Type)

	require.Len(t, song.Artists, 1)
	assert.Equal(t, "Daft Punk", song.Artists[0].ArtName)
	assert.Nil(t, song.Artists[0].Locales)

	assert.JSONEq(t, `{"SNG_ID": "999"}`, string(song.Fallback))
	assert.Equal(t, "song", song.TypeName)
}

// TestGWTrackPage_Decode tests decoding the composite track page document.
func TestGWTrackPage_Decode(t *testing.T) {
	t.Parallel()

	input := `{
		"DATA": {"SNG_ID": "3135556", "SNG_TITLE": "Harder, Better, Faster, Stronger"},
		"LYRICS": {
			"LYRICS_ID": "140",
			"LYRICS_TEXT": "Work it, make it",
			"LYRICS_SYNC_JSON": [
				{"lrc_timestamp": "[00:04.60]", "milliseconds": "4600", "duration": "3650", "line": "Work it"}
			]
		},
		"ISRC": {"data": [{"ALB_ID": "302127", "ALB_TITLE": "Discovery"}], "count": 1, "total": 1},
		"RELATED_ALBUMS": {"data": [], "count": 0, "total": 0}
	}`

	var page GWTrackPage

	require.NoError(t, json.Unmarshal([]byte(input), &page))

	assert.Equal(t, "3135556", page.Track.SngID)

	require.NotNil(t, page.Lyrics)
	assert.Equal(t, "140", page.Lyrics.LyricsID)
	require.Len(t, page.Lyrics.SyncedLines, 1)
	assert.Equal(t, "Work it", page.Lyrics.SyncedLines[0].Line)
	assert.Equal(t, "4600", page.Lyrics.SyncedLines[0].Milliseconds)

	require.Len(t, page.ISRC.Data, 1)
	assert.Equal(t, "302127", page.ISRC.Data[0].AlbID)
	assert.Equal(t, int64(1), page.ISRC.Total)
	assert.Empty(t, page.RelatedAlbums.Data)
}

// TestGWTrackPage_MissingLyrics tests that an absent LYRICS block leaves the
// pointer nil rather than a zero record.
func TestGWTrackPage_MissingLyrics(t *testing.T) {
	t.Parallel()

	var page GWTrackPage

	require.NoError(t, json.Unmarshal([]byte(`{"DATA": {"SNG_ID": "1"}}`), &page))
	assert.Nil(t, page.Lyrics)
}
