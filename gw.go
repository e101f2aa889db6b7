package deezer

import (
	"context"
	"net/url"
	"strconv"
)

// GetUserData retrieves the gateway's session bootstrap document.
// This is the one gateway method that never sends a real token; use
// RefreshToken instead when only the session token is needed.
func (c *Client) GetUserData(ctx context.Context) (*GWUserData, error) {
	return callGW[GWUserData](c, ctx, gwMethodGetUserData, gwEmptyPayload())
}

// GetTrackPage retrieves the full web-player page document of a track:
// the track itself plus lyrics, ISRC variants and related albums.
func (c *Client) GetTrackPage(ctx context.Context, songID int64) (*GWTrackPage, error) {
	params := url.Values{}
	params.Set("sng_id", strconv.FormatInt(songID, 10))

	return callGW[GWTrackPage](c, ctx, gwMethodPageTrack, gwFormPayload(params))
}

// GetSongData retrieves a single track's gateway record.
func (c *Client) GetSongData(ctx context.Context, songID int64) (*GWSong, error) {
	params := url.Values{}
	params.Set("sng_id", strconv.FormatInt(songID, 10))

	return callGW[GWSong](c, ctx, gwMethodSongData, gwFormPayload(params))
}

// GetSongsData retrieves gateway records for a batch of tracks.
// This is the only gateway call with a JSON body; the bookkeeping fields
// travel in the query string instead.
func (c *Client) GetSongsData(ctx context.Context, songIDs []int64) (*GWSongList, error) {
	body := map[string][]int64{"sng_ids": songIDs}

	return callGW[GWSongList](c, ctx, gwMethodSongListData, gwJSONPayload(body))
}

// GetAlbumSongs retrieves the gateway records of every track on an album.
func (c *Client) GetAlbumSongs(ctx context.Context, albumID int64) (*GWSongList, error) {
	params := url.Values{}
	params.Set("alb_id", strconv.FormatInt(albumID, 10))

	return callGW[GWSongList](c, ctx, gwMethodSongsByAlbum, gwFormPayload(params))
}

// GetAlbumData retrieves an album's gateway record.
func (c *Client) GetAlbumData(ctx context.Context, albumID int64) (*GWAlbum, error) {
	params := url.Values{}
	params.Set("alb_id", strconv.FormatInt(albumID, 10))

	return callGW[GWAlbum](c, ctx, gwMethodAlbumData, gwFormPayload(params))
}

// GetLyrics retrieves a track's lyrics, including the synchronized lines
// when the service has them.
func (c *Client) GetLyrics(ctx context.Context, songID int64) (*GWLyrics, error) {
	params := url.Values{}
	params.Set("sng_id", strconv.FormatInt(songID, 10))

	return callGW[GWLyrics](c, ctx, gwMethodSongLyrics, gwFormPayload(params))
}
