package recordsource

import (
	"encoding/json"
	"fmt"

	"github.com/yanqian/trendlens/internal/domain/record"
	"github.com/yanqian/trendlens/internal/domain/trending"
)

// catalog mirrors the video-catalog wire format: a flat item list where
// counts arrive as strings and thumbnails come in several resolutions.
type catalog struct {
	Items []catalogItem `json:"items"`
}

type catalogItem struct {
	ID         string         `json:"id"`
	Snippet    catalogSnippet `json:"snippet"`
	Statistics catalogStats   `json:"statistics"`
}

type catalogSnippet struct {
	Title        string            `json:"title"`
	Description  string            `json:"description"`
	ChannelTitle string            `json:"channelTitle"`
	CategoryID   string            `json:"categoryId"`
	PublishedAt  string            `json:"publishedAt"`
	Tags         []string          `json:"tags"`
	Thumbnails   catalogThumbnails `json:"thumbnails"`
}

type catalogThumbnails struct {
	Maxres  catalogThumbnail `json:"maxres"`
	High    catalogThumbnail `json:"high"`
	Medium  catalogThumbnail `json:"medium"`
	Default catalogThumbnail `json:"default"`
}

type catalogThumbnail struct {
	URL string `json:"url"`
}

type catalogStats struct {
	ViewCount    string `json:"viewCount"`
	LikeCount    string `json:"likeCount"`
	CommentCount string `json:"commentCount"`
}

func decodeCatalog(data []byte) ([]record.Raw, error) {
	var c catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	raws := make([]record.Raw, 0, len(c.Items))
	for _, item := range c.Items {
		raws = append(raws, toRaw(item))
	}
	return raws, nil
}

func toRaw(item catalogItem) record.Raw {
	return record.Raw{
		ID:           item.ID,
		Title:        item.Snippet.Title,
		Description:  item.Snippet.Description,
		ChannelTitle: item.Snippet.ChannelTitle,
		CategoryID:   item.Snippet.CategoryID,
		PublishedAt:  item.Snippet.PublishedAt,
		Tags:         item.Snippet.Tags,
		Thumbnail:    pickThumbnail(item.Snippet.Thumbnails),
		ViewCount:    item.Statistics.ViewCount,
		LikeCount:    item.Statistics.LikeCount,
		CommentCount: item.Statistics.CommentCount,
	}
}

// pickThumbnail prefers the largest rendition available.
func pickThumbnail(t catalogThumbnails) string {
	for _, candidate := range []string{t.Maxres.URL, t.High.URL, t.Medium.URL, t.Default.URL} {
		if candidate != "" {
			return candidate
		}
	}
	return ""
}

// applyQuery narrows a collected snapshot: optional category filter
// first, size cap second.
func applyQuery(raws []record.Raw, q trending.SourceQuery) []record.Raw {
	out := raws
	if q.CategoryID != "" {
		out = make([]record.Raw, 0, len(raws))
		for _, r := range raws {
			if r.CategoryID == q.CategoryID {
				out = append(out, r)
			}
		}
	}
	if q.MaxResults > 0 && len(out) > q.MaxResults {
		out = out[:q.MaxResults]
	}
	return out
}
