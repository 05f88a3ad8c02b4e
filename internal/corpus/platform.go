package corpus

import "strings"

// Platform identifies the social network a post was scraped from.
type Platform string

const (
	PlatformYouTube   Platform = "YouTube"
	PlatformTikTok    Platform = "TikTok"
	PlatformInstagram Platform = "Instagram"
)

// Platforms lists the supported platforms in display order.
func Platforms() []Platform {
	return []Platform{PlatformYouTube, PlatformTikTok, PlatformInstagram}
}

// ParsePlatform maps a raw platform cell to a Platform. Unknown values are
// preserved verbatim so filters on known platforms simply never match them.
func ParsePlatform(raw string) Platform {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "youtube":
		return PlatformYouTube
	case "tiktok":
		return PlatformTikTok
	case "instagram":
		return PlatformInstagram
	default:
		return Platform(strings.TrimSpace(raw))
	}
}

// MediaTypes returns the media-type values a platform distinguishes.
// TikTok has none.
func (p Platform) MediaTypes() []string {
	switch p {
	case PlatformYouTube:
		return []string{"shorts", "video"}
	case PlatformInstagram:
		return []string{"Posts", "Reels", "Carousel"}
	default:
		return nil
	}
}
