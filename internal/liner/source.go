package liner

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// Source is one opened input. The caller must close Body.
type Source struct {
	Name string
	Body io.ReadCloser
}

func isURL(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

// Open resolves path as a URL or a glob pattern and opens every match.
// A nil client means http.DefaultClient.
func Open(ctx context.Context, path string, client *http.Client) ([]Source, error) {
	if path == "" {
		return nil, ErrEmptyPath{}
	}

	if isURL(path) {
		src, err := openURL(ctx, path, client)
		if err != nil {
			return nil, err
		}

		return []Source{src}, nil
	}

	return openFiles(path)
}

func openURL(ctx context.Context, url string, client *http.Client) (Source, error) {
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return Source{}, fmt.Errorf("create request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return Source{}, fmt.Errorf("get %s: %w", url, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		resp.Body.Close()

		return Source{}, ErrStatus{URL: url, Code: resp.StatusCode}
	}

	return Source{
		Name: url,
		Body: resp.Body,
	}, nil
}

func openFiles(pattern string) ([]Source, error) {
	paths, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %q: %w", pattern, err)
	}

	if len(paths) == 0 {
		return nil, ErrNoFiles{Pattern: pattern}
	}

	sources := make([]Source, 0, len(paths))

	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			_ = Close(sources)

			return nil, fmt.Errorf("stat file: %w", err)
		}

		if info.IsDir() {
			continue
		}

		f, err := os.Open(p)
		if err != nil {
			_ = Close(sources)

			return nil, fmt.Errorf("open file: %w", err)
		}

		sources = append(sources, Source{
			Name: p,
			Body: f,
		})
	}

	if len(sources) == 0 {
		return nil, ErrNoFiles{Pattern: pattern}
	}

	return sources, nil
}

// Close closes every source body and returns the first error.
func Close(sources []Source) error {
	var firstErr error

	for _, src := range sources {
		if err := src.Body.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("close %s: %w", src.Name, err)
		}
	}

	return firstErr
}
