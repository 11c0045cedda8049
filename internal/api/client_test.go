package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/ytmp3/internal/model"
)

func newTestClient(t *testing.T, h http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c, err := New(srv.URL)
	require.NoError(t, err)
	return c
}

func TestNew_Validation(t *testing.T) {
	_, err := New("ftp://example.com")
	assert.Error(t, err)

	_, err = New("http://")
	assert.Error(t, err)

	c, err := New(" http://localhost:8000/api/ ")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000/api", c.BaseURL())
	assert.Equal(t, "http://localhost:8000/api/download/abc", c.FileURL("abc"))
}

func TestInfo_Video(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, PathInfo, r.URL.Path)
		assert.Equal(t, "https://youtu.be/x?a=1&b=2", r.URL.Query().Get("url"))
		assert.NotEmpty(t, r.Header.Get(RequestIDHeader))
		_, _ = io.WriteString(w, `{"type":"video","title":"T","duration":65,"uploader":"U","view_count":1500,"description":"d"}`)
	}))

	p, err := c.Info(context.Background(), "https://youtu.be/x?a=1&b=2")
	require.NoError(t, err)
	assert.False(t, p.IsPlaylist())
	assert.Equal(t, "T", p.Title)
	assert.Equal(t, int64(1500), p.ViewCount)
}

func TestInfo_ErrorDetail(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"detail":"This video is private and cannot be accessed."}`)
	}))

	_, err := c.Info(context.Background(), "u")
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "This video is private and cannot be accessed.", err.Error())

	detail, ok := Detail(err)
	assert.True(t, ok)
	assert.Equal(t, apiErr.Detail, detail)
	assert.False(t, IsNetwork(err))
}

func TestErrorWithoutStringDetail(t *testing.T) {
	tests := map[string]string{
		"validation array": `{"detail":[{"loc":["body","url"],"msg":"invalid url"}]}`,
		"plain text":       `Internal Server Error`,
		"empty":            ``,
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnprocessableEntity)
				_, _ = io.WriteString(w, body)
			}))

			_, err := c.Search(context.Background(), "q", 5)
			require.Error(t, err)
			_, ok := Detail(err)
			assert.False(t, ok)
			assert.Contains(t, err.Error(), "422")
		})
	}
}

func TestStartDownload(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, PathDownload, r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req model.DownloadRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "u1", req.URL)
		assert.Equal(t, "192", req.Quality)

		_, _ = io.WriteString(w, `{"task_id":"abc","status":"started","message":"Audio download started"}`)
	}))

	resp, err := c.StartDownload(context.Background(), "u1", "192")
	require.NoError(t, err)
	assert.Equal(t, "abc", resp.TaskID)
}

func TestStartDownload_MissingTaskID(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"status":"started"}`)
	}))

	_, err := c.StartDownload(context.Background(), "u1", "192")
	require.Error(t, err)
	assert.True(t, IsNetwork(err))
}

func TestStatus(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/status/job%2F1", r.URL.EscapedPath())
		_, _ = io.WriteString(w, `{"status":"downloading","progress":42,"files":[]}`)
	}))

	snap, err := c.Status(context.Background(), "job/1")
	require.NoError(t, err)
	assert.Equal(t, model.JobStatusDownloading, snap.Status)
	assert.Equal(t, 42.0, snap.ProgressPercent())
}

func TestSearch(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req model.SearchRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "lofi beats", req.Query)
		assert.Equal(t, 5, req.MaxResults)
		_, _ = io.WriteString(w, `{"results":[{"id":"a","title":"A","url":"https://www.youtube.com/watch?v=a","duration":61,"uploader":"X","view_count":2500000}]}`)
	}))

	results, err := c.Search(context.Background(), "lofi beats", 5)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "https://www.youtube.com/watch?v=a", results[0].URL)
	assert.Equal(t, int64(2500000), results[0].ViewCount)
}

func TestCleanup(t *testing.T) {
	called := false
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/cleanup/abc", r.URL.Path)
		_, _ = io.WriteString(w, `{"message":"Files cleaned up"}`)
	}))

	require.NoError(t, c.Cleanup(context.Background(), "abc"))
	assert.True(t, called)
}

func TestNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	c, err := New(addr)
	require.NoError(t, err)

	_, err = c.Info(context.Background(), "u")
	require.Error(t, err)
	assert.True(t, IsNetwork(err))
	assert.True(t, strings.HasPrefix(err.Error(), NetworkErrorPrefix), err.Error())
	assert.NotContains(t, err.Error(), addr)
}

func TestDecodeFailureIsNetworkError(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `<html>not json</html>`)
	}))

	_, err := c.Status(context.Background(), "abc")
	require.Error(t, err)
	assert.True(t, IsNetwork(err))
}

func TestContextCancelled(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{}`)
	}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.Status(ctx, "abc")
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestOpenFile(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/download/one":
			w.Header().Set("Content-Type", "audio/mpeg")
			w.Header().Set("Content-Disposition", `attachment; filename="My Song.mp3"`)
			_, _ = io.WriteString(w, "ID3data")
		case "/download/many":
			w.Header().Set("Content-Type", "application/zip")
			_, _ = io.WriteString(w, "PK")
		default:
			w.WriteHeader(http.StatusBadRequest)
			_, _ = io.WriteString(w, `{"detail":"Download not completed"}`)
		}
	}))

	f, err := c.OpenFile(context.Background(), "one")
	require.NoError(t, err)
	data, _ := io.ReadAll(f.Body)
	f.Body.Close()
	assert.Equal(t, "My Song.mp3", f.Name)
	assert.Equal(t, ContentTypeMP3, f.ContentType)
	assert.Equal(t, "ID3data", string(data))

	f, err = c.OpenFile(context.Background(), "many")
	require.NoError(t, err)
	f.Body.Close()
	assert.Equal(t, "many.zip", f.Name)

	_, err = c.OpenFile(context.Background(), "pending")
	require.Error(t, err)
	assert.Equal(t, "Download not completed", err.Error())
}

func TestFileName(t *testing.T) {
	tests := []struct {
		disposition string
		ctype       string
		expected    string
	}{
		{`attachment; filename="a.mp3"`, ContentTypeMP3, "a.mp3"},
		{`attachment; filename="../../etc/passwd"`, ContentTypeMP3, "passwd"},
		{`attachment; filename="..\\evil.mp3"`, ContentTypeMP3, "evil.mp3"},
		{`attachment; filename*=UTF-8''P%C3%A9tala.mp3`, ContentTypeMP3, "Pétala.mp3"},
		{``, ContentTypeZIP, "t.zip"},
		{`garbage;;`, "", "t.mp3"},
	}

	for _, test := range tests {
		if got := fileName(test.disposition, "t", test.ctype); got != test.expected {
			t.Errorf("fileName(%q) = %q, expected %q", test.disposition, got, test.expected)
		}
	}
}
