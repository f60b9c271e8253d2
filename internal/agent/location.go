// Package agent holds what the page and popup agents share: location
// parsing and the transport they send messages over.
package agent

import (
	"net/url"
	"regexp"
	"strings"
)

// TagLabels are the fixed labels offered by both agents.
var TagLabels = []string{"待看", "已看", "学习中", "收藏"}

var bvidPattern = regexp.MustCompile(`/video/(BV[a-zA-Z0-9]+)`)

// Location is what the agents read off a video page URL.
type Location struct {
	Bvid string
	Part string
}

// ParseLocation extracts the bvid from the path and the part from the p
// query parameter ("1" when absent). ok is false when there is no bvid.
func ParseLocation(raw string) (Location, bool) {
	u, err := url.Parse(raw)
	if err != nil {
		return Location{}, false
	}

	m := bvidPattern.FindStringSubmatch(u.Path)
	if m == nil {
		return Location{}, false
	}

	part := u.Query().Get("p")
	if part == "" {
		part = "1"
	}

	return Location{Bvid: m[1], Part: part}, true
}

// IsVideoPage reports whether the content agent should activate on href.
func IsVideoPage(href string) bool {
	return strings.Contains(href, "/video/BV")
}

// IsVideoTab reports whether the popup should enable tagging for a tab URL.
func IsVideoTab(tabURL string) bool {
	return strings.Contains(tabURL, "bilibili.com/video/BV")
}
