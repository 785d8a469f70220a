// Package naming derives stable item identities and filesystem-safe names
// from raw catalog data.
package naming

import (
	"regexp"
	"strings"
)

// maxNameLen caps sanitized names so they stay well under common
// filesystem limits even after an extension is appended.
const maxNameLen = 200

// illegalChars are characters not allowed in filenames on common filesystems.
var illegalChars = regexp.MustCompile(`[<>:"/\\|?*\x00]`)

// multiSpace matches runs of whitespace.
var multiSpace = regexp.MustCompile(`\s+`)

// Sanitize removes characters that are unsafe for filenames and normalizes
// whitespace. Catalog-supplied titles are untrusted, so this is applied to
// every on-disk file and directory name.
func Sanitize(name string) string {
	name = illegalChars.ReplaceAllString(name, "")
	name = multiSpace.ReplaceAllString(name, " ")
	name = strings.TrimSpace(name)

	if runes := []rune(name); len(runes) > maxNameLen {
		return string(runes[:maxNameLen])
	}
	return name
}

// videoIDPatterns match the 11-character video id in the URL shapes the
// primary platform uses.
var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:v=|/v/|youtu\.be/)([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`(?:embed/)([a-zA-Z0-9_-]{11})`),
}

// ExtractVideoID extracts the video id from a YouTube URL.
func ExtractVideoID(url string) (string, bool) {
	for _, p := range videoIDPatterns {
		if m := p.FindStringSubmatch(url); m != nil {
			return m[1], true
		}
	}
	return "", false
}

// IsPlaylistURL reports whether a URL refers to a playlist rather than a
// single item.
func IsPlaylistURL(url string) bool {
	return strings.Contains(url, "list=") || strings.Contains(url, "/playlist/")
}
