package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

const (
	// TagStatus is the fixed status code sent with every tagging payload.
	TagStatus = 2

	VideoURLPrefix = "https://bilibili.com/video/"
)

// Part is the segment number as sent by the agents. Older agents send it as a
// string ("2"), newer ones as a number; both decode to the same value.
type Part int

func (p *Part) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*p = 0
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*p = Part(leadingInt(n.String()))
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("part: %w", err)
	}
	*p = Part(leadingInt(s))
	return nil
}

// ParsePart reads a part from a URL query value the way the agents do.
func ParsePart(s string) Part {
	return Part(leadingInt(s))
}

// OrFirst returns the part number, or 1 when it is unset or not positive.
func (p Part) OrFirst() int {
	if p <= 0 {
		return 1
	}
	return int(p)
}

// leadingInt parses an optionally signed run of leading decimal digits
// ("3abc" -> 3, "+3" -> 3, "-2" -> -2, "abc" -> 0).
func leadingInt(s string) int {
	s = strings.TrimSpace(s)
	start := 0
	if start < len(s) && (s[start] == '+' || s[start] == '-') {
		start++
	}
	end := start
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}

// SyncRequest is the data carried by SYNC_TAG and SYNC_PROGRESS messages.
type SyncRequest struct {
	Bvid        string  `json:"bvid"`
	Tag         string  `json:"tag,omitempty"`
	Part        Part    `json:"p"`
	CurrentTime float64 `json:"currentTime"`
	Timestamp   int64   `json:"timestamp"`
}

// TagPayload is the body of POST /tagVideo.
type TagPayload struct {
	Bvid            string  `json:"bvid"`
	Title           string  `json:"title"`
	URL             string  `json:"url"`
	Cover           string  `json:"cover"`
	Duration        int     `json:"duration"`
	Episodes        int     `json:"episodes"`
	CurrentEpisode  int     `json:"currentEpisode"`
	Progress        int     `json:"progress"`
	Status          int     `json:"status"`
	Notes           string  `json:"notes"`
	OwnerName       string  `json:"ownerName"`
	WatchedDuration float64 `json:"watchedDuration"`
}

// ProgressPayload is the body of POST /syncProgress.
type ProgressPayload struct {
	Bvid            string  `json:"bvid"`
	CurrentEpisode  int     `json:"currentEpisode"`
	WatchedDuration float64 `json:"watchedDuration"`
}

// SyncResult is the remote API response with totalProgress merged in.
type SyncResult map[string]any

const TotalProgressKey = "totalProgress"

// MergeProgress copies resp and sets totalProgress on the copy.
func MergeProgress(resp map[string]any, progress int) SyncResult {
	out := make(SyncResult, len(resp)+1)
	for k, v := range resp {
		out[k] = v
	}
	out[TotalProgressKey] = progress
	return out
}

// TotalProgress reads totalProgress back from a result that may have been
// round-tripped through JSON.
func (r SyncResult) TotalProgress() (int, bool) {
	switch v := r[TotalProgressKey].(type) {
	case int:
		return v, true
	case float64:
		return int(v), true
	case json.Number:
		n, err := v.Int64()
		return int(n), err == nil
	default:
		return 0, false
	}
}

// ProgressMarker is what GET_PROGRESS answers with.
type ProgressMarker struct {
	Bvid string `json:"bvid"`
	Part int    `json:"p"`
}
