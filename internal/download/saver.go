package download

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ytget/ytmp3/internal/platform"
)

// maxNameAttempts caps the "name (n).ext" probing
const maxNameAttempts = 1000

// Saver copies result files of completed jobs into a local directory.
// Existing files are never overwritten.
type Saver struct {
	source FileSource
}

// NewSaver creates a saver fetching files from source
func NewSaver(source FileSource) *Saver {
	return &Saver{source: source}
}

// Save downloads the result of taskID into dir and returns the written path
func (s *Saver) Save(ctx context.Context, taskID, dir string) (string, error) {
	if dir == "" {
		return "", errors.New("no download directory configured")
	}
	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		return "", fmt.Errorf("create download directory: %w", err)
	}

	f, err := s.source.OpenFile(ctx, taskID)
	if err != nil {
		return "", err
	}
	defer f.Body.Close()

	tmp, err := os.CreateTemp(dir, ".ytmp3-*.part")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpPath) }

	n, err := io.Copy(tmp, f.Body)
	if err == nil && f.Size > 0 && n != f.Size {
		err = fmt.Errorf("short download: got %d of %d bytes", n, f.Size)
	}
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		cleanup()
		return "", fmt.Errorf("write %s: %w", f.Name, err)
	}

	target, err := claimPath(dir, SanitizeFileName(f.Name, taskID))
	if err != nil {
		cleanup()
		return "", err
	}
	if err := os.Rename(tmpPath, target); err != nil {
		cleanup()
		_ = os.Remove(target)
		return "", fmt.Errorf("move into place: %w", err)
	}

	slog.Info("result saved", "task_id", taskID, "path", target, "bytes", n)
	return target, nil
}

// claimPath reserves the first free "name", "name (1)", ... in dir by
// creating an empty placeholder file
func claimPath(dir, name string) (string, error) {
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)

	for i := 0; i < maxNameAttempts; i++ {
		candidate := name
		if i > 0 {
			candidate = fmt.Sprintf("%s (%d)%s", base, i, ext)
		}
		p := filepath.Join(dir, candidate)
		f, err := os.OpenFile(p, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
		if err == nil {
			_ = f.Close()
			return p, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return "", fmt.Errorf("reserve %s: %w", candidate, err)
		}
	}
	return "", fmt.Errorf("no free file name for %s", name)
}

// SanitizeFileName strips directories and characters most file systems
// reject. An empty result falls back to taskID with an .mp3 extension.
func SanitizeFileName(name, taskID string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(filepath.FromSlash(name))

	name = strings.Map(func(r rune) rune {
		switch {
		case r < 0x20 || r == 0x7f:
			return -1
		case strings.ContainsRune(`<>:"/\|?*`, r):
			return '_'
		}
		return r
	}, name)
	name = strings.Trim(name, " .")

	if name == "" || name == "_" {
		return taskID + ".mp3"
	}
	return name
}
