package naming

import "strings"

// Platform identifies the source platform of a track.
type Platform string

const (
	PlatformYouTube Platform = "youtube"
	PlatformSpotify Platform = "spotify"
)

// Identity returns the ledger key for a platform-native id. Spotify ids are
// prefixed so they cannot collide with YouTube video ids; YouTube ids are
// stored bare because the same value is embedded in file tags.
func (p Platform) Identity(nativeID string) string {
	if p == PlatformSpotify {
		return "spotify:" + nativeID
	}
	return nativeID
}

// Detect classifies a reference URL by platform. Anything that is not a
// Spotify URL is treated as YouTube, which also covers bare video ids.
func Detect(url string) Platform {
	if strings.Contains(url, "open.spotify.com") || strings.HasPrefix(url, "spotify:") {
		return PlatformSpotify
	}
	return PlatformYouTube
}
