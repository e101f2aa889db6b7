// Package utils provides small helpers shared by the transport layer:
// User-Agent provisioning and content-type classification for log dumps.
package utils
