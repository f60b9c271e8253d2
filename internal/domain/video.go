package domain

type VideoMetadata struct {
	Bvid     string    `json:"bvid"`
	Title    string    `json:"title"`
	Cover    string    `json:"pic"`
	Duration int       `json:"duration"` // seconds, all segments
	Videos   int       `json:"videos"`   // segment count
	Pages    []Segment `json:"pages"`
	Owner    Owner     `json:"owner"`
}

// Segment is one numbered part of a multi-part video.
type Segment struct {
	Index    int    `json:"page"` // 1-based
	Duration int    `json:"duration"`
	Part     string `json:"part,omitempty"`
}

type Owner struct {
	Name string `json:"name"`
}
