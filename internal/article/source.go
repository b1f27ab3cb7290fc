package article

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"strings"
	"time"
)

// maxPayloadBytes bounds the size of the article document.
const maxPayloadBytes = 8 * 1024 * 1024

// Source reads the raw article document.
type Source interface {
	Read(ctx context.Context) ([]byte, error)
	String() string
}

// NewSource returns an HTTPSource for http(s) locations and a FileSource
// for everything else.
func NewSource(location string) Source {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return NewHTTPSource(location, nil)
	}
	return &FileSource{Path: location}
}

// HTTPSource fetches the document with a GET request.
type HTTPSource struct {
	URL    string
	client *http.Client
}

// NewHTTPSource creates an HTTPSource. A nil client gets a default with a
// 15 second timeout.
func NewHTTPSource(url string, client *http.Client) *HTTPSource {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &HTTPSource{URL: url, client: client}
}

func (s *HTTPSource) String() string { return s.URL }

func (s *HTTPSource) Read(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, &FetchError{Source: s.URL, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &FetchError{Source: s.URL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{
			Source: s.URL,
			Status: resp.StatusCode,
			Err:    fmt.Errorf("unexpected status %s", resp.Status),
		}
	}

	data, err := readLimited(resp.Body, maxPayloadBytes)
	if err != nil {
		return nil, &FetchError{Source: s.URL, Err: err}
	}
	return data, nil
}

// FileSource reads the document from disk, or from FS when set.
type FileSource struct {
	Path string
	FS   fs.FS
}

func (s *FileSource) String() string { return s.Path }

func (s *FileSource) Read(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, &FetchError{Source: s.Path, Err: err}
	}
	var (
		data []byte
		err  error
	)
	if s.FS != nil {
		data, err = fs.ReadFile(s.FS, s.Path)
	} else {
		data, err = os.ReadFile(s.Path)
	}
	if err != nil {
		return nil, &FetchError{Source: s.Path, Err: err}
	}
	return data, nil
}

// readLimited reads at most limit bytes and fails if the body is larger.
func readLimited(r io.Reader, limit int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("article document exceeds %d bytes", limit)
	}
	return data, nil
}
