// Package api is the HTTP client for the conversion service.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/ytget/ytmp3/internal/model"
)

// Service endpoints
const (
	PathInfo     = "/info"
	PathDownload = "/download"
	PathStatus   = "/status/"
	PathFile     = "/download/"
	PathSearch   = "/search"
	PathCleanup  = "/cleanup/"
)

// RequestIDHeader carries a per-request correlation id
const RequestIDHeader = "X-Request-ID"

// Content types of result files
const (
	ContentTypeMP3 = "audio/mpeg"
	ContentTypeZIP = "application/zip"
)

// Client talks to the conversion service. It never retries and applies no
// timeout of its own; callers bound requests with their context.
type Client struct {
	baseURL *url.URL
	http    *http.Client
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces http.DefaultClient
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// New creates a client for the service at baseURL (http or https)
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, fmt.Errorf("parse server url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("server url must start with http:// or https://")
	}
	if u.Host == "" {
		return nil, fmt.Errorf("server url has no host")
	}
	u.Path = strings.TrimRight(u.Path, "/")
	u.RawQuery = ""
	u.Fragment = ""

	c := &Client{baseURL: u, http: http.DefaultClient}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the normalised service address
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// endpoint joins the already-escaped path p onto the base URL
func (c *Client) endpoint(p string, query url.Values) string {
	u := *c.baseURL
	raw := c.baseURL.EscapedPath() + p
	if unescaped, err := url.PathUnescape(raw); err == nil {
		u.Path = unescaped
		u.RawPath = raw
	} else {
		u.Path = raw
		u.RawPath = ""
	}
	if query != nil {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

// Info fetches preview metadata for a video or playlist URL
func (c *Client) Info(ctx context.Context, videoURL string) (*model.Preview, error) {
	var out model.Preview
	q := url.Values{"url": []string{videoURL}}
	if err := c.doJSON(ctx, http.MethodGet, c.endpoint(PathInfo, q), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// StartDownload submits a conversion job and returns its handle
func (c *Client) StartDownload(ctx context.Context, videoURL, quality string) (*model.DownloadResponse, error) {
	req := model.DownloadRequest{URL: videoURL, Quality: quality}
	var out model.DownloadResponse
	if err := c.doJSON(ctx, http.MethodPost, c.endpoint(PathDownload, nil), req, &out); err != nil {
		return nil, err
	}
	if out.TaskID == "" {
		return nil, &NetworkError{Op: "start download", Err: errors.New("response has no task_id")}
	}
	return &out, nil
}

// Status fetches the current snapshot of a job
func (c *Client) Status(ctx context.Context, taskID string) (*model.StatusSnapshot, error) {
	var out model.StatusSnapshot
	if err := c.doJSON(ctx, http.MethodGet, c.endpoint(PathStatus+url.PathEscape(taskID), nil), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Search returns up to maxResults items matching query
func (c *Client) Search(ctx context.Context, query string, maxResults int) ([]model.SearchResult, error) {
	req := model.SearchRequest{Query: query, MaxResults: maxResults}
	var out model.SearchResponse
	if err := c.doJSON(ctx, http.MethodPost, c.endpoint(PathSearch, nil), req, &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}

// Cleanup asks the service to release a job's files
func (c *Client) Cleanup(ctx context.Context, taskID string) error {
	return c.doJSON(ctx, http.MethodDelete, c.endpoint(PathCleanup+url.PathEscape(taskID), nil), nil, nil)
}

// FileURL is the address of a completed job's result file
func (c *Client) FileURL(taskID string) string {
	return c.endpoint(PathFile+url.PathEscape(taskID), nil)
}

// File is an open result file. The caller must close Body.
type File struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.ReadCloser
}

// OpenFile starts downloading a completed job's result file
func (c *Client) OpenFile(ctx context.Context, taskID string) (*File, error) {
	resp, err := c.send(ctx, http.MethodGet, c.FileURL(taskID), nil)
	if err != nil {
		return nil, err
	}
	if !isSuccess(resp.StatusCode) {
		defer resp.Body.Close()
		return nil, responseError(resp)
	}

	ctype := resp.Header.Get("Content-Type")
	if mt, _, err := mime.ParseMediaType(ctype); err == nil {
		ctype = mt
	}
	return &File{
		Name:        fileName(resp.Header.Get("Content-Disposition"), taskID, ctype),
		ContentType: ctype,
		Size:        resp.ContentLength,
		Body:        resp.Body,
	}, nil
}

// doJSON sends body (if any) as JSON and decodes a 2xx response into out
func (c *Client) doJSON(ctx context.Context, method, target string, body, out any) error {
	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		payload = bytes.NewReader(data)
	}

	resp, err := c.send(ctx, method, target, payload)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return responseError(resp)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &NetworkError{Op: method + " " + target, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

// send issues one request tagged with a fresh request id
func (c *Client) send(ctx context.Context, method, target string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	reqID := uuid.NewString()
	req.Header.Set(RequestIDHeader, reqID)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	slog.Debug("api request", "method", method, "url", target, "request_id", reqID)
	resp, err := c.http.Do(req)
	if err != nil {
		slog.Debug("api request failed", "request_id", reqID, "err", err)
		return nil, &NetworkError{Op: method + " " + target, Err: err}
	}
	slog.Debug("api response", "request_id", reqID, "status", resp.StatusCode)
	return resp, nil
}

func isSuccess(code int) bool {
	return code >= 200 && code < 300
}

// responseError builds an APIError, keeping the service's detail when it is a string
func responseError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	data, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil || len(data) == 0 {
		return apiErr
	}
	var body struct {
		Detail json.RawMessage `json:"detail"`
	}
	if json.Unmarshal(data, &body) != nil || len(body.Detail) == 0 {
		return apiErr
	}
	var detail string
	if json.Unmarshal(body.Detail, &detail) == nil {
		apiErr.Detail = strings.TrimSpace(detail)
	}
	return apiErr
}

// fileName picks the download name from Content-Disposition, falling back to
// the task id with an extension matching the content type
func fileName(disposition, taskID, ctype string) string {
	if disposition != "" {
		if _, params, err := mime.ParseMediaType(disposition); err == nil {
			if name := path.Base(strings.ReplaceAll(params["filename"], "\\", "/")); name != "" && name != "." && name != "/" {
				return name
			}
		}
	}
	ext := ".mp3"
	if ctype == ContentTypeZIP {
		ext = ".zip"
	}
	return taskID + ext
}
