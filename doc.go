// Package deezer provides a typed client for Deezer's two API surfaces:
// the public, versioned REST API and the private "gw-light" API used by
// the Deezer web player. The client hides the private API's session token
// handshake and walks cursor-based pagination of public list endpoints.
package deezer
