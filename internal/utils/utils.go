package utils

import (
	"mime"
	"regexp"
	"strings"
)

// textContentTypePatterns matches content types considered text-based.
//
//nolint:gochecknoglobals // Immutable, pre-compiled patterns used as constants.
var textContentTypePatterns = []*regexp.Regexp{
	regexp.MustCompile("^text/.+"),
	regexp.MustCompile("^application/json$"),
}

// IsTextContentType checks whether the given content type represents a
// text-based format safe to include in log dumps. The charset, if present,
// must be "utf-8" or "us-ascii".
func IsTextContentType(contentType string) bool {
	parsedType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}

	for _, pattern := range textContentTypePatterns {
		if !pattern.MatchString(parsedType) {
			continue
		}

		charset := strings.ToLower(params["charset"])

		return charset == "" || charset == "utf-8" || charset == "us-ascii"
	}

	return false
}
