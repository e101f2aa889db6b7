package deezer

import (
	"context"
	"fmt"
	"net/url"
)

// GetTrack retrieves a track by its Deezer ID.
func (c *Client) GetTrack(ctx context.Context, trackID int64) (*FullTrack, error) {
	return callAPI[FullTrack](c, ctx, fmt.Sprintf("track/%d", trackID))
}

// GetTrackByISRC retrieves a track by its ISRC code.
func (c *Client) GetTrackByISRC(ctx context.Context, isrc string) (*FullTrack, error) {
	return callAPI[FullTrack](c, ctx, "track/isrc:"+isrc)
}

// GetAlbum retrieves an album by its Deezer ID.
func (c *Client) GetAlbum(ctx context.Context, albumID int64) (*FullAlbum, error) {
	return callAPI[FullAlbum](c, ctx, fmt.Sprintf("album/%d", albumID))
}

// GetAlbumByUPC retrieves an album by its UPC barcode.
func (c *Client) GetAlbumByUPC(ctx context.Context, upc string) (*FullAlbum, error) {
	return callAPI[FullAlbum](c, ctx, "album/upc:"+upc)
}

// GetAlbumTracks retrieves every track of an album, following pagination.
func (c *Client) GetAlbumTracks(ctx context.Context, albumID int64) ([]Track, error) {
	return callAPIList[Track](c, ctx, fmt.Sprintf("album/%d/tracks", albumID))
}

// GetArtist retrieves an artist by its Deezer ID.
func (c *Client) GetArtist(ctx context.Context, artistID int64) (*Artist, error) {
	return callAPI[Artist](c, ctx, fmt.Sprintf("artist/%d", artistID))
}

// GetArtistAlbums retrieves every album of an artist, following pagination.
func (c *Client) GetArtistAlbums(ctx context.Context, artistID int64) ([]Album, error) {
	return callAPIList[Album](c, ctx, fmt.Sprintf("artist/%d/albums", artistID))
}

// GetArtistTopTracks retrieves an artist's most popular tracks.
func (c *Client) GetArtistTopTracks(ctx context.Context, artistID int64) ([]Track, error) {
	return callAPIList[Track](c, ctx, fmt.Sprintf("artist/%d/top", artistID))
}

// GetRelatedArtists retrieves artists similar to the given one.
func (c *Client) GetRelatedArtists(ctx context.Context, artistID int64) ([]RelatedArtist, error) {
	return callAPIList[RelatedArtist](c, ctx, fmt.Sprintf("artist/%d/related", artistID))
}

// GetArtistRadio retrieves the track mix seeded by an artist.
func (c *Client) GetArtistRadio(ctx context.Context, artistID int64) ([]Track, error) {
	return callAPIList[Track](c, ctx, fmt.Sprintf("artist/%d/radio", artistID))
}

// GetArtistPlaylists retrieves playlists featuring an artist.
func (c *Client) GetArtistPlaylists(ctx context.Context, artistID int64) ([]Playlist, error) {
	return callAPIList[Playlist](c, ctx, fmt.Sprintf("artist/%d/playlists", artistID))
}

// GetEditorials retrieves all editorial selections.
func (c *Client) GetEditorials(ctx context.Context) ([]Editorial, error) {
	return callAPIList[Editorial](c, ctx, "editorial")
}

// GetEditorial retrieves the editorial selection of a genre.
func (c *Client) GetEditorial(ctx context.Context, genreID int64) (*Editorial, error) {
	return callAPI[Editorial](c, ctx, fmt.Sprintf("editorial/%d", genreID))
}

// GetGenres retrieves all genres.
func (c *Client) GetGenres(ctx context.Context) ([]Editorial, error) {
	return callAPIList[Editorial](c, ctx, "genre")
}

// GetGenre retrieves a genre by its Deezer ID.
func (c *Client) GetGenre(ctx context.Context, genreID int64) (*Editorial, error) {
	return callAPI[Editorial](c, ctx, fmt.Sprintf("genre/%d", genreID))
}

// GetGenreArtists retrieves all artists of a genre.
func (c *Client) GetGenreArtists(ctx context.Context, genreID int64) ([]Artist, error) {
	return callAPIList[Artist](c, ctx, fmt.Sprintf("genre/%d/artists", genreID))
}

// GetGenreRadios retrieves all radios of a genre.
func (c *Client) GetGenreRadios(ctx context.Context, genreID int64) ([]Radio, error) {
	return callAPIList[Radio](c, ctx, fmt.Sprintf("genre/%d/radios", genreID))
}

// GetInfos retrieves service availability details for the caller's country.
func (c *Client) GetInfos(ctx context.Context) (*Info, error) {
	return callAPI[Info](c, ctx, "infos")
}

// GetRadios retrieves all radios.
func (c *Client) GetRadios(ctx context.Context) ([]Radio, error) {
	return callAPIList[Radio](c, ctx, "radio")
}

// GetRadio retrieves a radio by its Deezer ID.
func (c *Client) GetRadio(ctx context.Context, radioID int64) (*Radio, error) {
	return callAPI[Radio](c, ctx, fmt.Sprintf("radio/%d", radioID))
}

// GetRadioTracks retrieves the first tracks of a radio.
func (c *Client) GetRadioTracks(ctx context.Context, radioID int64) ([]Track, error) {
	return callAPIList[Track](c, ctx, fmt.Sprintf("radio/%d/tracks", radioID))
}

// GetRadioGenres retrieves all radios split by genre.
func (c *Client) GetRadioGenres(ctx context.Context) ([]GenreRadios, error) {
	return callAPIList[GenreRadios](c, ctx, "radio/genres")
}

// GetTopRadios retrieves the personal radio split per genre.
func (c *Client) GetTopRadios(ctx context.Context) ([]Radio, error) {
	return callAPIList[Radio](c, ctx, "radio/top")
}

// GetRadioLists retrieves a curated selection of radios.
func (c *Client) GetRadioLists(ctx context.Context) ([]Radio, error) {
	return callAPIList[Radio](c, ctx, "radio/lists")
}

// Search runs a free-text track search. With strict enabled the service
// disables its fuzzy matching.
func (c *Client) Search(ctx context.Context, query string, strict bool) ([]Track, error) {
	return callAPIList[Track](c, ctx, searchPath("search", query, strict))
}

// SearchAlbums runs a free-text album search.
func (c *Client) SearchAlbums(ctx context.Context, query string, strict bool) ([]Album, error) {
	return callAPIList[Album](c, ctx, searchPath("search/album", query, strict))
}

// SearchArtists runs a free-text artist search.
func (c *Client) SearchArtists(ctx context.Context, query string, strict bool) ([]Artist, error) {
	return callAPIList[Artist](c, ctx, searchPath("search/artist", query, strict))
}

// SearchPlaylists runs a free-text playlist search.
func (c *Client) SearchPlaylists(ctx context.Context, query string, strict bool) ([]Playlist, error) {
	return callAPIList[Playlist](c, ctx, searchPath("search/playlist", query, strict))
}

// SearchUsers runs a free-text user search.
func (c *Client) SearchUsers(ctx context.Context, query string, strict bool) ([]User, error) {
	return callAPIList[User](c, ctx, searchPath("search/user", query, strict))
}

// SearchTrack looks up a single track by quoted track, artist and album
// terms, relaxing the query in three stages: all three terms, then
// track+artist, then track alone. The first non-empty stage wins and its
// first hit is returned. If every stage comes back empty the search fails
// with ErrNoTrackFound. The strict flag applies to all stages unchanged.
func (c *Client) SearchTrack(ctx context.Context, track, artist, album string, strict bool) (*Track, error) {
	queries := []string{
		fmt.Sprintf(`track:%q artist:%q album:%q`, track, artist, album),
		fmt.Sprintf(`track:%q artist:%q`, track, artist),
		fmt.Sprintf(`track:%q`, track),
	}

	for _, query := range queries {
		tracks, err := callAPIList[Track](c, ctx, searchPath("search/track", query, strict))
		if err != nil {
			return nil, err
		}

		if len(tracks) > 0 {
			return &tracks[0], nil
		}
	}

	return nil, ErrNoTrackFound
}

// searchPath builds a search endpoint path with the query escaped and the
// strict flag rendered the way the service expects it.
func searchPath(endpoint, query string, strict bool) string {
	strictValue := "off"
	if strict {
		strictValue = "on"
	}

	return endpoint + "?q=" + url.QueryEscape(query) + "&strict=" + strictValue
}
