package view

import (
	"strings"

	"github.com/ytget/ytmp3/internal/format"
	"github.com/ytget/ytmp3/internal/model"
)

// Placeholder is shown instead of an empty result list
type Placeholder struct {
	Icon    string
	Heading string
	Hint    string
}

// NoResults is the placeholder for a search without matches
var NoResults = Placeholder{
	Icon:    "🔍",
	Heading: "No results found",
	Hint:    "Try a different search term",
}

// ResultRow is one search hit
type ResultRow struct {
	Title       string
	Meta        string
	Description string
	URL         string
	Thumbnail   string
	Quality     string
}

// Results is the rendered search response
type Results struct {
	Rows        []ResultRow
	Placeholder *Placeholder
}

// Empty reports whether the placeholder replaces the list
func (r Results) Empty() bool {
	return len(r.Rows) == 0
}

// RenderResults builds one row per result, or the placeholder when there are none
func RenderResults(results []model.SearchResult) Results {
	if len(results) == 0 {
		ph := NoResults
		return Results{Placeholder: &ph}
	}

	rows := make([]ResultRow, 0, len(results))
	for _, r := range results {
		rows = append(rows, ResultRow{
			Title:       orDefault(r.Title, UntitledItem),
			Meta:        resultMeta(r),
			Description: Truncate(r.Description, DescriptionLimit),
			URL:         strings.TrimSpace(r.URL),
			Thumbnail:   strings.TrimSpace(r.Thumbnail),
			Quality:     model.DefaultBitrate,
		})
	}
	return Results{Rows: rows}
}

// resultMeta is "uploader · duration · views", omitting views when unknown
func resultMeta(r model.SearchResult) string {
	parts := []string{
		orDefault(r.Uploader, UnknownUploader),
		format.Duration(r.Duration),
	}
	if r.ViewCount > 0 {
		parts = append(parts, format.Abbreviate(r.ViewCount)+" views")
	}
	return strings.Join(parts, " · ")
}
