package preview

import (
	"net/url"
	"strings"
)

var privatePlatforms = []struct {
	domain string
	name   string
}{
	{"instagram.com", "Instagram"},
	{"threads.net", "Threads"},
	{"x.com", "X"},
	{"snapchat.com", "Snapchat"},
}

// IsPrivatePost reports whether rawURL points to a social media post
// whose page has no readable title without logging in
func IsPrivatePost(rawURL string) bool {
	_, ok := platform(rawURL)
	return ok
}

// PlatformName returns the name of the social media platform rawURL
// belongs to
func PlatformName(rawURL string) string {
	if name, ok := platform(rawURL); ok {
		return name
	}
	return "Social Media"
}

func platform(rawURL string) (string, bool) {
	host := ""
	if u, err := url.Parse(rawURL); err == nil {
		host = strings.ToLower(u.Hostname())
	}

	for _, p := range privatePlatforms {
		if host == "" {
			if strings.Contains(rawURL, p.domain) {
				return p.name, true
			}
			continue
		}
		if host == p.domain || strings.HasSuffix(host, "."+p.domain) {
			return p.name, true
		}
	}
	return "", false
}

// DisplayTitle picks the label of a note whose first link is rawURL.
// An empty result means the note keeps its own title.
func DisplayTitle(rawURL string, meta Metadata) string {
	if meta.Title != "" {
		return meta.Title
	}
	if IsPrivatePost(rawURL) {
		return "This " + PlatformName(rawURL) + " post is private"
	}
	return ""
}
