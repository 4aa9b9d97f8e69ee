// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sheets

import (
	"regexp"
	"strings"
)

// driveImageHost serves raw image bytes for a Drive file id. Drive share
// URLs answer <img> requests with an HTML interstitial; this host does not.
const driveImageHost = "https://lh3.googleusercontent.com"

// drivePatterns are tried in order; the first captured id wins.
var drivePatterns = []*regexp.Regexp{
	regexp.MustCompile(`/file/d/([a-zA-Z0-9_-]+)`), // /file/d/{id}/view
	regexp.MustCompile(`[?&]id=([a-zA-Z0-9_-]+)`),  // ?id={id}
	regexp.MustCompile(`/d/([a-zA-Z0-9_-]+)`),      // {host}/d/{id}
}

// NormalizeDriveImageURL rewrites a Drive share URL to the direct image
// host. Blank input stays blank, and anything without a recognizable file
// id passes through unchanged. The canonical form re-matches to the same
// id, so the function is idempotent.
func NormalizeDriveImageURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	for _, p := range drivePatterns {
		if m := p.FindStringSubmatch(trimmed); m != nil && m[1] != "" {
			return driveImageHost + "/d/" + m[1]
		}
	}
	return trimmed
}
