package model

// DefaultSearchResults is the result cap sent with every search
const DefaultSearchResults = 5

// SearchRequest is the body of POST /search
type SearchRequest struct {
	Query      string `json:"query"`
	MaxResults int    `json:"max_results"`
}

// SearchResult is one matching item
type SearchResult struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	URL         string  `json:"url"`
	Thumbnail   string  `json:"thumbnail,omitempty"`
	Duration    float64 `json:"duration"`
	Uploader    string  `json:"uploader"`
	ViewCount   int64   `json:"view_count"`
	UploadDate  string  `json:"upload_date,omitempty"`
	Description string  `json:"description,omitempty"`
}

// SearchResponse wraps the result list returned by POST /search
type SearchResponse struct {
	Results []SearchResult `json:"results"`
}
