// Package http provides custom HTTP transport utilities:
// request/response logging for debugging and injection of the fixed
// identity headers (User-Agent, Accept-Language) every request must carry.
package http
