package bilibili

import (
	"encoding/json"

	"video_tagger/internal/domain"
)

// APIResponse is the envelope of the view endpoint. Code 0 means success.
type APIResponse struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type View struct {
	Bvid     string `json:"bvid"`
	Title    string `json:"title"`
	Pic      string `json:"pic"`
	Duration int    `json:"duration"`
	Videos   int    `json:"videos"`
	Pages    []Page `json:"pages"`
	Owner    struct {
		Name string `json:"name"`
	} `json:"owner"`
}

type Page struct {
	Page     int    `json:"page"`
	Duration int    `json:"duration"`
	Part     string `json:"part"`
}

func (v View) toDomain() *domain.VideoMetadata {
	meta := &domain.VideoMetadata{
		Bvid:     v.Bvid,
		Title:    v.Title,
		Cover:    v.Pic,
		Duration: v.Duration,
		Videos:   v.Videos,
		Owner:    domain.Owner{Name: v.Owner.Name},
	}

	if v.Pages != nil {
		meta.Pages = make([]domain.Segment, 0, len(v.Pages))
		for _, p := range v.Pages {
			meta.Pages = append(meta.Pages, domain.Segment{
				Index:    p.Page,
				Duration: p.Duration,
				Part:     p.Part,
			})
		}
	}

	return meta
}
