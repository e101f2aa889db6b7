package deezer

const (
	// DefaultAPIBaseURL is the base URL of the public Deezer API.
	DefaultAPIBaseURL = "https://api.deezer.com/"
	// DefaultGatewayURL is the single endpoint of the private gw-light API.
	// The gateway is only served over plain HTTP.
	DefaultGatewayURL = "http://www.deezer.com/ajax/gw-light.php"
)

const (
	// apiVersion is the protocol version tag sent with every gateway request.
	apiVersion = "1.0"
	// sentinelToken marks a session with no token acquired yet.
	// The gateway expects the literal string, not an empty value.
	sentinelToken = "null"
	// defaultPageLimit is the page size applied to public API requests
	// that do not specify their own limit.
	defaultPageLimit = "100"
)

// Gateway method names. The gateway selects its operation via the "method"
// form field rather than the URL path.
const (
	gwMethodGetUserData  = "deezer.getUserData"
	gwMethodPageTrack    = "deezer.pageTrack"
	gwMethodSongData     = "song.getData"
	gwMethodSongListData = "song.getListData"
	gwMethodSongsByAlbum = "song.getListByAlbum"
	gwMethodAlbumData    = "album.getData"
	gwMethodSongLyrics   = "song.getLyrics"
)

// Bookkeeping field names attached to every gateway request.
const (
	fieldAPIToken   = "api_token"
	fieldAPIVersion = "api_version"
	fieldMethod     = "method"
	fieldInput      = "input"
)

const queryParamLimit = "limit"
